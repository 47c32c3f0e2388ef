package interfaces

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	triviaErrors "github.com/sebuszqo/TriviaAPI/internal/trivia/errors"
)

// optionalInt decodes a JSON number or numeric string. Absent, null and ""
// all decode to nil; the frontend posts form values as strings.
type optionalInt struct {
	Value *int
}

func (o *optionalInt) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		o.Value = nil
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		s = strings.TrimSpace(s)
		if s == "" {
			o.Value = nil
			return nil
		}
		v, err := strconv.Atoi(s)
		if err != nil {
			return fmt.Errorf("not an integer: %q", s)
		}
		o.Value = &v
		return nil
	}

	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	if f != float64(int(f)) {
		return fmt.Errorf("not an integer: %v", f)
	}
	v := int(f)
	o.Value = &v
	return nil
}

type createQuestionRequest struct {
	Question   string      `json:"question"`
	Answer     string      `json:"answer"`
	Difficulty optionalInt `json:"difficulty"`
	Category   optionalInt `json:"category"`
}

type searchRequest struct {
	SearchTerm string `json:"searchTerm"`
}

type quizCategory struct {
	ID   optionalInt `json:"id"`
	Type string      `json:"type"`
}

type quizRequest struct {
	QuizCategory      *quizCategory `json:"quiz_category"`
	PreviousQuestions *[]int        `json:"previous_questions"`
}

// decodeBody maps malformed or missing JSON to ErrBadRequest and well-formed
// JSON with wrongly typed fields to a validation error.
func decodeBody(r io.Reader, v interface{}) error {
	err := json.NewDecoder(r).Decode(v)
	if err == nil {
		return nil
	}

	var syntaxErr *json.SyntaxError
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) || errors.As(err, &syntaxErr) {
		return fmt.Errorf("decode body: %w", triviaErrors.ErrBadRequest)
	}
	return triviaErrors.NewValidationError(err.Error())
}
