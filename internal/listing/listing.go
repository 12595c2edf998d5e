// Package listing derives the visible, ordered job list from the full fetched
// collection and the user's current filter criteria. Everything here is a pure
// function of its inputs: no I/O, no hidden state, safe to recompute on every
// request.
package listing

import (
	"net/url"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/Hao186188/parttime-job-frontend/internal/models"
)

// SortKey selects the ordering applied after filtering.
type SortKey string

const (
	SortNewest     SortKey = "newest"
	SortOldest     SortKey = "oldest"
	SortSalaryHigh SortKey = "salary_high"
	SortSalaryLow  SortKey = "salary_low"
)

// ParseSortKey maps a raw sort parameter to a SortKey, falling back to
// SortNewest for anything it does not recognise.
func ParseSortKey(s string) SortKey {
	switch SortKey(s) {
	case SortOldest, SortSalaryHigh, SortSalaryLow:
		return SortKey(s)
	default:
		return SortNewest
	}
}

// Criteria is the user's current filter/sort state. Every field is
// independently optional; a zero value means "match all".
type Criteria struct {
	Search     string
	Location   string
	JobType    string
	MinSalary  int
	Categories []string
	SortBy     SortKey
}

// ParseCriteria builds Criteria from request query parameters. Inputs are
// coerced, never rejected: a non-numeric minSalary becomes 0 (filter off),
// an unknown sort key becomes "newest".
func ParseCriteria(values url.Values) Criteria {
	minSalary, err := strconv.Atoi(values.Get("minSalary"))
	if err != nil || minSalary < 0 {
		minSalary = 0
	}

	return Criteria{
		Search:     values.Get("search"),
		Location:   values.Get("location"),
		JobType:    values.Get("jobType"),
		MinSalary:  minSalary,
		Categories: values["category"],
		SortBy:     ParseSortKey(values.Get("sort")),
	}
}

// salaryToken matches the first number in a free-form salary string, allowing
// a single thousands separator group ("25,000 - 30,000 VNĐ/giờ" → "25,000").
var salaryToken = regexp.MustCompile(`\d+,\d+|\d+`)

// ExtractSalary pulls a comparable integer out of free-form salary text.
// The text is unstructured server data, so this is best-effort by design:
// the first numeric token wins, commas are stripped, and anything without a
// parseable number yields 0. It never fails.
func ExtractSalary(salary string) int {
	token := salaryToken.FindString(salary)
	if token == "" {
		return 0
	}
	n, err := strconv.Atoi(strings.ReplaceAll(token, ",", ""))
	if err != nil {
		return 0
	}
	return n
}

// Recompute filters jobs by the criteria and orders the result. All active
// predicates are conjunctive. The sort is stable, so ties keep their fetch
// order. The input slice is never modified.
func Recompute(jobs []models.Job, c Criteria) []models.Job {
	result := make([]models.Job, 0, len(jobs))
	for _, job := range jobs {
		if matches(job, c) {
			result = append(result, job)
		}
	}

	switch c.SortBy {
	case SortOldest:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].CreatedAt.Before(result[j].CreatedAt)
		})
	case SortSalaryHigh:
		sort.SliceStable(result, func(i, j int) bool {
			return ExtractSalary(result[i].Salary) > ExtractSalary(result[j].Salary)
		})
	case SortSalaryLow:
		sort.SliceStable(result, func(i, j int) bool {
			return ExtractSalary(result[i].Salary) < ExtractSalary(result[j].Salary)
		})
	default: // newest
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].CreatedAt.After(result[j].CreatedAt)
		})
	}

	return result
}

func matches(job models.Job, c Criteria) bool {
	if c.Search != "" {
		term := strings.ToLower(c.Search)
		if !strings.Contains(strings.ToLower(job.Title), term) &&
			!strings.Contains(strings.ToLower(job.Company.Name), term) {
			return false
		}
	}

	if c.Location != "" &&
		!strings.Contains(strings.ToLower(job.Location), strings.ToLower(c.Location)) {
		return false
	}

	// Job type is an exact match — the values come from a fixed select box.
	if c.JobType != "" && job.JobType != c.JobType {
		return false
	}

	if c.MinSalary > 0 && ExtractSalary(job.Salary) < c.MinSalary {
		return false
	}

	if len(c.Categories) > 0 {
		found := false
		for _, cat := range c.Categories {
			if job.Category == cat {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	return true
}

// Featured returns up to n featured jobs in fetch order, independent of any
// criteria (the promotional sidebar widget).
func Featured(jobs []models.Job, n int) []models.Job {
	featured := make([]models.Job, 0, n)
	for _, job := range jobs {
		if !job.IsFeatured {
			continue
		}
		featured = append(featured, job)
		if len(featured) == n {
			break
		}
	}
	return featured
}
