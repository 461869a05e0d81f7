// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types.

# Domain Types

  - Question: poll question text and publication date
  - Choice: an answer to a question with its vote tally

# Request Types

  - CreateQuestionRequest: text, publication_date (RFC3339, optional)
  - CreateChoiceRequest: text
  - VoteRequest: choice_id

# Response Types

  - QuestionListResponse: questions, empty, message
  - QuestionWithChoices: question, choices
  - ResultsResponse: question, choices, total_votes
  - ErrorResponse: error, message

# Messages

	NoPollsAvailable = "No polls are available."
	NoChoiceSelected = "You didn't select a choice."
*/
package models
