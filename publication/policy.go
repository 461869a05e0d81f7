// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package publication

import (
	"sort"
	"time"

	"github.com/danielhkuo/polls/models"
)

// DefaultLimit is the number of questions shown on the index page
const DefaultLimit = 5

// RecentWindow is how far back a question still counts as recently published
const RecentWindow = 24 * time.Hour

// IsPublished reports whether a question with the given publication date
// is visible at now. A date equal to now is published.
func IsPublished(pub, now time.Time) bool {
	return !pub.After(now)
}

// IsRecent reports whether pub falls in (now-24h, now].
func IsRecent(pub, now time.Time) bool {
	return IsPublished(pub, now) && pub.After(now.Add(-RecentWindow))
}

// ListPublished returns the published questions, newest first, capped at limit.
// A non-positive limit means DefaultLimit. The input slice is left untouched.
func ListPublished(questions []models.Question, now time.Time, limit int) []models.Question {
	if limit <= 0 {
		limit = DefaultLimit
	}

	published := make([]models.Question, 0, len(questions))
	for _, q := range questions {
		if IsPublished(q.PublicationDate, now) {
			published = append(published, q)
		}
	}

	sort.SliceStable(published, func(i, j int) bool {
		a, b := published[i], published[j]
		if !a.PublicationDate.Equal(b.PublicationDate) {
			return a.PublicationDate.After(b.PublicationDate)
		}
		return a.ID > b.ID
	})

	if len(published) > limit {
		published = published[:limit]
	}
	return published
}
