// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/danielhkuo/polls/models"
	"github.com/danielhkuo/polls/publication"
	"github.com/danielhkuo/polls/store"
	"github.com/danielhkuo/polls/testutil"
)

type fixture struct {
	questions store.QuestionStore
	choices   store.ChoiceStore
	results   *ResultsHandler
	voting    *VotingHandler
	polls     *PollHandler
}

func setup(t *testing.T) fixture {
	t.Helper()

	questions, choices := testutil.SetupTestStores(t)
	cfg := testutil.GetTestConfig()
	clock := testutil.Clock()

	return fixture{
		questions: questions,
		choices:   choices,
		results:   NewResultsHandler(questions, choices, cfg, clock),
		voting:    NewVotingHandler(questions, choices, clock),
		polls:     NewPollHandler(questions, choices, clock),
	}
}

func idString(id int64) string {
	return strconv.FormatInt(id, 10)
}

func listJSON(t *testing.T, f fixture) models.QuestionListResponse {
	t.Helper()

	req := httptest.NewRequest("GET", "/api/questions", nil)
	w := httptest.NewRecorder()
	f.results.ListQuestions(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.QuestionListResponse
	testutil.AssertJSON(t, w, &resp)
	return resp
}

func texts(questions []models.QuestionSummary) []string {
	out := make([]string, len(questions))
	for i, q := range questions {
		out[i] = q.Text
	}
	return out
}

func TestIndex_NoQuestions(t *testing.T) {
	f := setup(t)

	req := httptest.NewRequest("GET", "/polls/", nil)
	w := httptest.NewRecorder()
	f.results.Index(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)
	testutil.AssertContains(t, w, models.NoPollsAvailable)

	resp := listJSON(t, f)
	if !resp.Empty || len(resp.Questions) != 0 {
		t.Errorf("Expected empty listing, got %+v", resp)
	}
	if resp.Message != models.NoPollsAvailable {
		t.Errorf("Expected message %q, got %q", models.NoPollsAvailable, resp.Message)
	}
	if resp.Questions == nil {
		t.Error("Expected questions to encode as [] not null")
	}
}

func TestIndex_Listing(t *testing.T) {
	tests := []struct {
		name      string
		questions map[string]int // text -> days from now
		want      []string
	}{
		{
			name:      "past question",
			questions: map[string]int{"Past question.": -30},
			want:      []string{"Past question."},
		},
		{
			name:      "future question",
			questions: map[string]int{"Future question.": 10},
			want:      []string{},
		},
		{
			name:      "future and past questions",
			questions: map[string]int{"Future question.": 30, "Past question.": -30},
			want:      []string{"Past question."},
		},
		{
			name:      "two past questions",
			questions: map[string]int{"Past Question 1.": -10, "Past Question 2.": -5},
			want:      []string{"Past Question 2.", "Past Question 1."},
		},
		{
			name: "six past questions",
			questions: map[string]int{
				"Q1": -1, "Q2": -2, "Q3": -3, "Q4": -4, "Q5": -5, "Q6": -6,
			},
			want: []string{"Q1", "Q2", "Q3", "Q4", "Q5"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := setup(t)
			for text, days := range tt.questions {
				testutil.CreateTestQuestion(t, f.questions, text, days)
			}

			resp := listJSON(t, f)
			got := texts(resp.Questions)
			if strings.Join(got, "|") != strings.Join(tt.want, "|") {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
			if resp.Empty != (len(tt.want) == 0) {
				t.Errorf("Expected empty=%v, got %v", len(tt.want) == 0, resp.Empty)
			}

			req := httptest.NewRequest("GET", "/polls/", nil)
			w := httptest.NewRecorder()
			f.results.Index(w, req)

			testutil.AssertStatus(t, w, http.StatusOK)
			if n := strings.Count(w.Body.String(), "<li>"); n != len(tt.want) {
				t.Errorf("Expected %d list items, got %d", len(tt.want), n)
			}
			for _, text := range tt.want {
				testutil.AssertContains(t, w, text)
			}
			if len(tt.want) == 0 {
				testutil.AssertContains(t, w, models.NoPollsAvailable)
			} else {
				testutil.AssertNotContains(t, w, models.NoPollsAvailable)
			}
			if _, ok := tt.questions["Future question."]; ok {
				testutil.AssertNotContains(t, w, "Future question.")
			}
		})
	}
}

func TestIndex_RecentFlag(t *testing.T) {
	f := setup(t)
	ctx := httptest.NewRequest("GET", "/", nil).Context()

	if _, err := f.questions.Create(ctx, "Fresh", testutil.Now.Add(-2*time.Hour)); err != nil {
		t.Fatal(err)
	}
	if _, err := f.questions.Create(ctx, "Stale", testutil.Now.Add(-(24*time.Hour + time.Second))); err != nil {
		t.Fatal(err)
	}

	resp := listJSON(t, f)
	if len(resp.Questions) != 2 {
		t.Fatalf("Expected 2 questions, got %d", len(resp.Questions))
	}

	fresh, stale := resp.Questions[0], resp.Questions[1]
	if fresh.Text != "Fresh" || !fresh.Recent {
		t.Errorf("Expected Fresh to be recent, got %+v", fresh)
	}
	if stale.Text != "Stale" || stale.Recent {
		t.Errorf("Expected Stale not to be recent, got %+v", stale)
	}
	if fresh.PublishedAgo != "2 hours ago" {
		t.Errorf("Expected published_ago '2 hours ago', got %q", fresh.PublishedAgo)
	}

	req := httptest.NewRequest("GET", "/polls/", nil)
	w := httptest.NewRecorder()
	f.results.Index(w, req)
	if n := strings.Count(w.Body.String(), `class="recent"`); n != 1 {
		t.Errorf("Expected one recent badge, got %d", n)
	}
}

func TestIndex_ListLimitFromConfig(t *testing.T) {
	questions, choices := testutil.SetupTestStores(t)
	cfg := testutil.GetTestConfig()
	cfg.ListLimit = 2
	h := NewResultsHandler(questions, choices, cfg, testutil.Clock())

	for i := 1; i <= 4; i++ {
		testutil.CreateTestQuestion(t, questions, "Q"+strconv.Itoa(i), -i)
	}

	req := httptest.NewRequest("GET", "/api/questions", nil)
	w := httptest.NewRecorder()
	h.ListQuestions(w, req)

	var resp models.QuestionListResponse
	testutil.AssertJSON(t, w, &resp)
	if got := texts(resp.Questions); strings.Join(got, "|") != "Q1|Q2" {
		t.Errorf("Expected [Q1 Q2], got %v", got)
	}
}

func TestDetail(t *testing.T) {
	f := setup(t)
	past := testutil.CreateTestQuestion(t, f.questions, "Past Question.", -5)
	future := testutil.CreateTestQuestion(t, f.questions, "Future question.", 5)
	testutil.AddTestChoice(t, f.choices, past.ID, "Not much")
	testutil.AddTestChoice(t, f.choices, past.ID, "The sky")

	tests := []struct {
		name           string
		id             string
		expectedStatus int
		contains       []string
	}{
		{"past question", idString(past.ID), http.StatusOK, []string{"Past Question.", "Not much", "The sky", `name="choice"`}},
		{"future question", idString(future.ID), http.StatusNotFound, nil},
		{"missing question", "9999", http.StatusNotFound, nil},
		{"malformed id", "abc", http.StatusNotFound, nil},
		{"negative id", "-1", http.StatusNotFound, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/polls/"+tt.id+"/", nil)
			req.SetPathValue("id", tt.id)
			w := httptest.NewRecorder()

			f.results.Detail(w, req)

			testutil.AssertStatus(t, w, tt.expectedStatus)
			for _, text := range tt.contains {
				testutil.AssertContains(t, w, text)
			}
			if tt.expectedStatus == http.StatusNotFound {
				testutil.AssertNotContains(t, w, "Future question.")
			}
		})
	}
}

func TestDetail_BecomesVisibleAtPublicationTime(t *testing.T) {
	questions, choices := testutil.SetupTestStores(t)
	cfg := testutil.GetTestConfig()
	q := testutil.CreateTestQuestion(t, questions, "Scheduled", 1)

	before := NewResultsHandler(questions, choices, cfg, testutil.Clock())
	at := NewResultsHandler(questions, choices, cfg, publication.FixedClock{T: q.PublicationDate})

	for _, tc := range []struct {
		name   string
		h      *ResultsHandler
		status int
	}{
		{"before publication", before, http.StatusNotFound},
		{"at publication", at, http.StatusOK},
	} {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/api/questions/"+idString(q.ID), nil)
			req.SetPathValue("id", idString(q.ID))
			w := httptest.NewRecorder()

			tc.h.GetQuestion(w, req)

			testutil.AssertStatus(t, w, tc.status)
		})
	}
}

func TestGetQuestion(t *testing.T) {
	f := setup(t)
	q := testutil.CreateTestQuestion(t, f.questions, "Past Question.", -5)
	c := testutil.AddTestChoice(t, f.choices, q.ID, "Only")

	req := httptest.NewRequest("GET", "/api/questions/"+idString(q.ID), nil)
	req.SetPathValue("id", idString(q.ID))
	w := httptest.NewRecorder()
	f.results.GetQuestion(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.QuestionWithChoices
	testutil.AssertJSON(t, w, &resp)
	if resp.Question.ID != q.ID || resp.Question.Text != "Past Question." {
		t.Errorf("Unexpected question %+v", resp.Question)
	}
	if len(resp.Choices) != 1 || resp.Choices[0].ID != c.ID {
		t.Errorf("Unexpected choices %+v", resp.Choices)
	}
}

func TestResults(t *testing.T) {
	f := setup(t)
	q := testutil.CreateTestQuestion(t, f.questions, "Tally", -1)
	a := testutil.AddTestChoice(t, f.choices, q.ID, "Alpha")
	testutil.AddTestChoice(t, f.choices, q.ID, "Beta")
	future := testutil.CreateTestQuestion(t, f.questions, "Hidden", 3)

	ctx := httptest.NewRequest("GET", "/", nil).Context()
	for i := 0; i < 2; i++ {
		if err := f.choices.IncrementVote(ctx, q.ID, a.ID); err != nil {
			t.Fatal(err)
		}
	}

	t.Run("html", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/polls/"+idString(q.ID)+"/results/", nil)
		req.SetPathValue("id", idString(q.ID))
		w := httptest.NewRecorder()
		f.results.Results(w, req)

		testutil.AssertStatus(t, w, http.StatusOK)
		testutil.AssertContains(t, w, "Alpha -- 2 votes")
		testutil.AssertContains(t, w, "Beta -- 0 votes")
		testutil.AssertContains(t, w, "2 votes in total")
		testutil.AssertContains(t, w, "<title>Tally</title>")
	})

	t.Run("json", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/questions/"+idString(q.ID)+"/results", nil)
		req.SetPathValue("id", idString(q.ID))
		w := httptest.NewRecorder()
		f.results.GetResults(w, req)

		testutil.AssertStatus(t, w, http.StatusOK)

		var resp models.ResultsResponse
		testutil.AssertJSON(t, w, &resp)
		if resp.TotalVotes != 2 {
			t.Errorf("Expected 2 total votes, got %d", resp.TotalVotes)
		}
		if len(resp.Choices) != 2 || resp.Choices[0].Votes != 2 || resp.Choices[1].Votes != 0 {
			t.Errorf("Unexpected tallies %+v", resp.Choices)
		}
	})

	t.Run("unpublished", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/polls/"+idString(future.ID)+"/results/", nil)
		req.SetPathValue("id", idString(future.ID))
		w := httptest.NewRecorder()
		f.results.Results(w, req)
		testutil.AssertStatus(t, w, http.StatusNotFound)

		w = httptest.NewRecorder()
		f.results.GetResults(w, req)
		testutil.AssertStatus(t, w, http.StatusNotFound)
	})
}
