package models

import "time"

type Review struct {
	ID          int       `json:"id"`
	Rating      float64   `json:"rating"`
	Comment     string    `json:"comment"`
	PatientName string    `json:"patientName"`
	IsAnonymous bool      `json:"isAnonymous"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ClampRating keeps a rating inside the 1.0 to 5.0 scale.
func ClampRating(r float64) float64 {
	if r < 1.0 {
		return 1.0
	} else if r > 5.0 {
		return 5.0
	}
	return r
}

// ReviewSummary aggregates a provider's reviews.
type ReviewSummary struct {
	Reviews       []Review    `json:"reviews"`
	Count         int         `json:"count"`
	AverageRating float64     `json:"averageRating"`
	Distribution  map[int]int `json:"distribution"`
}

// SummarizeReviews computes count, average and the per-star distribution.
// Anonymous reviews have their patient name removed.
func SummarizeReviews(reviews []Review) ReviewSummary {
	summary := ReviewSummary{
		Reviews:      make([]Review, 0, len(reviews)),
		Distribution: map[int]int{1: 0, 2: 0, 3: 0, 4: 0, 5: 0},
	}

	var total float64
	for _, r := range reviews {
		r.Rating = ClampRating(r.Rating)
		if r.IsAnonymous {
			r.PatientName = ""
		}
		total += r.Rating
		summary.Distribution[int(r.Rating+0.5)]++
		summary.Reviews = append(summary.Reviews, r)
	}

	summary.Count = len(summary.Reviews)
	if summary.Count > 0 {
		summary.AverageRating = float64(int(total/float64(summary.Count)*10+0.5)) / 10
	}
	return summary
}
