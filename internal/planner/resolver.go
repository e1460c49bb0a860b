// Package planner turns a degree's requirement categories, a student's
// completed courses, and a credit budget into an ordered, semester-bucketed
// study plan. Everything here is a pure transformation over catalog data;
// the only external call is the ranking oracle.
package planner

import (
	"context"
	"fmt"
	"strings"

	"github.com/uniflowhq/uniflow/internal/domain"
	"github.com/uniflowhq/uniflow/internal/rank"
)

const (
	// How deep to ask the ranking oracle when ordering selection
	// categories and electives.
	selectionRankDepth = 50
	electiveRankDepth  = 30

	// How many benchmark skills feed the selection relevance query.
	relevanceQuerySkills = 3

	defaultSchedule = "See course catalog for schedule"
)

// RelevanceQuery derives the free-text query used to rank selection-category
// courses: the student's top benchmark skills, or the degree name when no
// benchmark is available.
func RelevanceQuery(student domain.StudentContext) string {
	if len(student.SkillBenchmark) > 0 {
		skills := student.SkillBenchmark
		if len(skills) > relevanceQuerySkills {
			skills = skills[:relevanceQuerySkills]
		}
		return strings.Join(skills, " ")
	}
	return student.EnrolledDegree
}

// ResolveRequirements walks the degree's categories in declaration order and
// returns the required course list with its credit total. The returned
// picked set contains every completed and selected course id and seeds the
// elective filler's exclusion set.
//
// A category whose required credits cover its full listed load is mandatory:
// every not-yet-completed course is included regardless of ranking. Other
// categories are selection categories: remaining courses are taken in rank
// order (unranked ones after, in listing order) until the category's credit
// floor is met, counting credits already earned in the category first.
func ResolveRequirements(
	ctx context.Context,
	degree domain.DegreeRequirement,
	student domain.StudentContext,
	ranker rank.Ranker,
) ([]domain.PlannedCourse, float64, map[string]bool, error) {
	picked := make(map[string]bool, len(student.CompletedCourseIDs))
	for id := range student.CompletedCourseIDs {
		picked[id] = true
	}

	var required []domain.PlannedCourse
	var requiredCredits float64

	for _, category := range degree.Categories {
		// Empty categories are satisfied by electives or notes, not here.
		if len(category.Courses) == 0 {
			continue
		}

		remaining := make([]domain.CourseRecord, 0, len(category.Courses))
		for _, course := range category.Courses {
			if !picked[course.CourseID] {
				remaining = append(remaining, course)
			}
		}

		if category.Mandatory() {
			reason := fmt.Sprintf("Required for %s", category.Name)
			for _, course := range remaining {
				required = append(required, projectCourse(course, category.Name, reason))
				requiredCredits += course.Credits
				picked[course.CourseID] = true
			}
			continue
		}

		ordered, err := orderByRelevance(ctx, ranker, remaining, RelevanceQuery(student))
		if err != nil {
			return nil, 0, nil, fmt.Errorf("ranking category %q: %w", category.Name, err)
		}

		filled := completedCredits(category, student)
		reason := fmt.Sprintf("Selected for %s (aligned with target role)", category.Name)
		for _, course := range ordered {
			if filled >= category.CreditsRequired {
				break
			}
			required = append(required, projectCourse(course, category.Name, reason))
			requiredCredits += course.Credits
			picked[course.CourseID] = true
			filled += course.Credits
		}
	}

	return required, requiredCredits, picked, nil
}

// orderByRelevance places ranked courses first, in rank order, followed by
// the remaining courses the oracle did not surface, in their listing order.
func orderByRelevance(
	ctx context.Context,
	ranker rank.Ranker,
	remaining []domain.CourseRecord,
	query string,
) ([]domain.CourseRecord, error) {
	ranked, err := ranker.Rank(ctx, query, selectionRankDepth)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]domain.CourseRecord, len(remaining))
	for _, course := range remaining {
		byID[course.CourseID] = course
	}

	ordered := make([]domain.CourseRecord, 0, len(remaining))
	seen := make(map[string]bool, len(remaining))
	for _, hit := range ranked {
		if course, ok := byID[hit.CourseID]; ok && !seen[hit.CourseID] {
			ordered = append(ordered, course)
			seen[hit.CourseID] = true
		}
	}
	for _, course := range remaining {
		if !seen[course.CourseID] {
			ordered = append(ordered, course)
		}
	}
	return ordered, nil
}

// completedCredits sums the credits the student has already earned inside
// the category.
func completedCredits(category domain.RequirementCategory, student domain.StudentContext) float64 {
	var total float64
	for _, course := range category.Courses {
		if student.Completed(course.CourseID) {
			total += course.Credits
		}
	}
	return total
}

func projectCourse(course domain.CourseRecord, category, reason string) domain.PlannedCourse {
	schedule := course.Schedule
	if schedule == "" {
		schedule = defaultSchedule
	}
	return domain.PlannedCourse{
		CourseID:        course.CourseID,
		Title:           course.Title,
		Category:        category,
		Credits:         course.Credits,
		RelevanceReason: reason,
		SkillsCovered:   course.SkillsTaught,
		Schedule:        schedule,
	}
}
