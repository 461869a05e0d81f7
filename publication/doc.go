// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package publication decides which questions visitors may see.

# Visibility

A question is published once its publication date is at or before the
current time:

	publication.IsPublished(q.PublicationDate, now)

Questions scheduled in the future stay hidden from the index, the detail
page, the results page and the vote endpoint.

# Recently Published

	publication.IsRecent(q.PublicationDate, now)

True for dates in the half-open window (now-24h, now]. A question published
exactly 24 hours ago is no longer recent.

# Listing

	latest := publication.ListPublished(all, now, publication.DefaultLimit)

Filters to published questions, sorts by publication date descending and
truncates to the limit (5 by default).

All functions take now explicitly so callers control the clock.
*/
package publication
