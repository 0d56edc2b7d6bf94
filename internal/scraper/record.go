// Record is the flat job-posting shape every site extractor produces.
// Column names and order are fixed so CSV exports stay stable across runs.

package scraper

// Record is one extracted job posting. All fields are plain text; a missing
// field on the page is an empty string, never an omitted column.
type Record struct {
	PostTitle              string
	Company                string
	CompanyTagline         string
	JobLocation            string
	JobType                string
	JobSalary              string
	JobExpires             string
	JobCategory            string
	RequiredQualifications string
	SkillsRequired         string // reserved, always empty
	ApplicationURL         string
	ApplicationEmail       string
	Slug                   string
	PostCategory           string
	PostTag                string
	Subcategory            string
	PostContent            string
}

// Headers returns the CSV column names in export order.
func Headers() []string {
	return []string{
		"post_title",
		"company",
		"company_tagline",
		"job_location",
		"job_type",
		"job_salary",
		"job_expires",
		"job_category",
		"required_qualifications",
		"skills_required",
		"application_url",
		"application_email",
		"slug",
		"post_category",
		"post_tag",
		"subcategory",
		"post_content",
	}
}

// Row returns the record values in the same order as Headers.
func (r Record) Row() []string {
	return []string{
		r.PostTitle,
		r.Company,
		r.CompanyTagline,
		r.JobLocation,
		r.JobType,
		r.JobSalary,
		r.JobExpires,
		r.JobCategory,
		r.RequiredQualifications,
		r.SkillsRequired,
		r.ApplicationURL,
		r.ApplicationEmail,
		r.Slug,
		r.PostCategory,
		r.PostTag,
		r.Subcategory,
		r.PostContent,
	}
}

// Actionable reports whether the posting carries at least one way to apply.
// Records without contact info are dropped by the extractor.
func (r Record) Actionable() bool {
	return r.ApplicationEmail != "" || r.ApplicationURL != ""
}
