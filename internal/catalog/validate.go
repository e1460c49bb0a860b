package catalog

import "fmt"

// ValidateImports checks both catalog documents before conversion.
// Returns every validation error found; the store must not be built
// from documents that produce any.
func ValidateImports(courses []CourseImport, degrees []DegreeImport) []error {
	var errs []error

	courseIDs := make(map[string]bool)
	errs = append(errs, validateCourses(courses, courseIDs)...)
	errs = append(errs, validateDegrees(degrees, courseIDs)...)

	return errs
}

func validateCourses(courses []CourseImport, courseIDs map[string]bool) []error {
	var errs []error

	for i, c := range courses {
		prefix := fmt.Sprintf("courses[%d]", i)

		if c.CourseID == "" {
			errs = append(errs, fmt.Errorf("%s.course_id is required", prefix))
		} else if courseIDs[c.CourseID] {
			errs = append(errs, fmt.Errorf("%s.course_id: duplicate id %q", prefix, c.CourseID))
		} else {
			courseIDs[c.CourseID] = true
		}

		if c.Title == "" {
			errs = append(errs, fmt.Errorf("%s.title is required", prefix))
		}
		if c.Credits != nil && *c.Credits <= 0 {
			errs = append(errs, fmt.Errorf("%s.credits must be positive", prefix))
		}
	}

	// Prerequisites may only reference known courses. Checked in a second
	// pass so forward references within the file are accepted.
	for i, c := range courses {
		for _, pre := range c.Prerequisites {
			if pre != "" && !courseIDs[pre] {
				errs = append(errs, fmt.Errorf("courses[%d].prerequisites: course %q not found", i, pre))
			}
		}
	}

	return errs
}

func validateDegrees(degrees []DegreeImport, courseIDs map[string]bool) []error {
	var errs []error

	degreeNames := make(map[string]bool)
	for i, d := range degrees {
		prefix := fmt.Sprintf("degrees[%d]", i)

		if d.DegreeName == "" {
			errs = append(errs, fmt.Errorf("%s.degree_name is required", prefix))
		} else if degreeNames[d.DegreeName] {
			errs = append(errs, fmt.Errorf("%s.degree_name: duplicate name %q", prefix, d.DegreeName))
		} else {
			degreeNames[d.DegreeName] = true
		}

		if d.DegreeAbbreviation == "" {
			errs = append(errs, fmt.Errorf("%s.degree_abbreviation is required", prefix))
		}
		if d.CreditsToGraduate <= 0 {
			errs = append(errs, fmt.Errorf("%s.credits_to_graduate must be positive", prefix))
		}

		for j, cat := range d.CourseRequirements {
			catPrefix := fmt.Sprintf("%s.course_requirements[%d]", prefix, j)

			if cat.Category == "" {
				errs = append(errs, fmt.Errorf("%s.category is required", catPrefix))
			}
			if cat.CreditsRequired < 0 {
				errs = append(errs, fmt.Errorf("%s.credits_required must not be negative", catPrefix))
			}
			for k, ref := range cat.Courses {
				if ref.Code == "" {
					errs = append(errs, fmt.Errorf("%s.courses[%d].code is required", catPrefix, k))
				} else if !courseIDs[ref.Code] {
					errs = append(errs, fmt.Errorf("%s.courses[%d].code: course %q not found in catalog", catPrefix, k, ref.Code))
				}
			}
		}
	}

	return errs
}
