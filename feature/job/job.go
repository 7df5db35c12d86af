package job

import (
	"sort"

	"save-editor/core/savefile"
	"save-editor/core/utils"
)

// Job is one employment entry: company name to job title. Stored as a
// flat map on the player section with no redundancy.
type Job struct {
	Company string `json:"company"`
	Title   string `json:"title"`
}

// Project computes the job view, sorted alphabetically by company.
func Project(c *savefile.Container) []Job {
	jobs := utils.Obj(c.Player(), "jobs")

	out := make([]Job, 0, len(jobs))
	for company, title := range jobs {
		if company == "" {
			continue
		}
		out = append(out, Job{Company: company, Title: utils.ToString(title)})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Company < out[j].Company
	})
	return out
}

// Find returns the job held at one company.
func Find(c *savefile.Container, company string) (Job, bool) {
	jobs := utils.Obj(c.Player(), "jobs")
	title, ok := jobs[company]
	if !ok {
		return Job{}, false
	}
	return Job{Company: company, Title: utils.ToString(title)}, true
}

// Apply sets or clears the job at one company. An empty title quits
// the job (map delete); no propagation is needed.
func Apply(working *savefile.Container, company, title string) {
	player := working.Ensure(savefile.SectionPlayer)
	jobs := utils.EnsureObj(player, "jobs")
	if title == "" {
		delete(jobs, company)
		return
	}
	jobs[company] = title
}

// Revert restores the job at one company to its baseline state.
func Revert(working, baseline *savefile.Container, company string) {
	base, ok := Find(baseline, company)
	if !ok {
		Apply(working, company, "")
		return
	}
	Apply(working, company, base.Title)
}
