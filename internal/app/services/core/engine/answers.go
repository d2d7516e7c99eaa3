package engine

import (
	"fmt"
	"math"
)

// RawAnswer is one submitted answer before domain validation. A nil Value
// means the question was presented but not answered.
type RawAnswer struct {
	QuestionID string
	Value      interface{}
}

// Answer is a domain-checked response to a single catalog question.
type Answer struct {
	QuestionID string
	Kind       DomainKind
	Bool       bool
	Scale      int
	Option     string
}

// AnswerSet is the complete, immutable response set of one assessment
// submission. It is created wholesale by ParseAnswerSet and never mutated
// afterwards; every downstream component reads from it concurrently without
// coordination.
type AnswerSet struct {
	answers map[string]Answer
}

// ParseAnswerSet validates every submitted value against its question's
// declared domain. Any unknown question, type mismatch or out-of-domain value
// yields an InputError before scoring begins. Nil values are accepted and
// recorded as unanswered.
func ParseAnswerSet(raw []RawAnswer) (*AnswerSet, error) {
	if len(raw) == 0 {
		return nil, &InputError{Reason: "no answers submitted"}
	}

	answers := make(map[string]Answer, len(raw))
	for _, ra := range raw {
		question, ok := QuestionByID(ra.QuestionID)
		if !ok {
			return nil, &InputError{QuestionID: ra.QuestionID, Reason: "unknown question"}
		}
		if ra.Value == nil {
			continue
		}
		if _, dup := answers[ra.QuestionID]; dup {
			return nil, &InputError{QuestionID: ra.QuestionID, Reason: "duplicate answer"}
		}

		answer, err := checkDomain(question, ra.Value)
		if err != nil {
			return nil, err
		}
		answers[ra.QuestionID] = answer
	}

	return &AnswerSet{answers: answers}, nil
}

func checkDomain(question Question, value interface{}) (Answer, error) {
	answer := Answer{QuestionID: question.ID, Kind: question.Domain.Kind}

	switch question.Domain.Kind {
	case DomainBoolean:
		b, ok := value.(bool)
		if !ok {
			return Answer{}, &InputError{QuestionID: question.ID, Reason: fmt.Sprintf("expected boolean, got %T", value)}
		}
		answer.Bool = b

	case DomainScale:
		n, ok := numericValue(value)
		if !ok {
			return Answer{}, &InputError{QuestionID: question.ID, Reason: fmt.Sprintf("expected integer scale value, got %T", value)}
		}
		if n < question.Domain.ScaleMin || n > question.Domain.ScaleMax {
			return Answer{}, &InputError{
				QuestionID: question.ID,
				Reason:     fmt.Sprintf("scale value %d outside declared range %d-%d", n, question.Domain.ScaleMin, question.Domain.ScaleMax),
			}
		}
		answer.Scale = n

	case DomainEnum:
		s, ok := value.(string)
		if !ok {
			return Answer{}, &InputError{QuestionID: question.ID, Reason: fmt.Sprintf("expected option string, got %T", value)}
		}
		if _, known := question.Domain.optionPoints(s); !known {
			return Answer{}, &InputError{QuestionID: question.ID, Reason: fmt.Sprintf("unknown option %q", s)}
		}
		answer.Option = s

	default:
		return Answer{}, &InputError{QuestionID: question.ID, Reason: "unsupported answer domain"}
	}

	return answer, nil
}

// numericValue accepts the integer encodings JSON decoding produces.
func numericValue(value interface{}) (int, bool) {
	switch v := value.(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case float64:
		if v != math.Trunc(v) {
			return 0, false
		}
		return int(v), true
	default:
		return 0, false
	}
}

func (s *AnswerSet) Answered(questionID string) bool {
	_, ok := s.answers[questionID]
	return ok
}

func (s *AnswerSet) AnsweredCount() int {
	return len(s.answers)
}

// Bool reports the value of an answered boolean question. The second return
// is false when the question is unanswered or not boolean.
func (s *AnswerSet) Bool(questionID string) (bool, bool) {
	a, ok := s.answers[questionID]
	if !ok || a.Kind != DomainBoolean {
		return false, false
	}
	return a.Bool, true
}

func (s *AnswerSet) Scale(questionID string) (int, bool) {
	a, ok := s.answers[questionID]
	if !ok || a.Kind != DomainScale {
		return 0, false
	}
	return a.Scale, true
}

func (s *AnswerSet) Option(questionID string) (string, bool) {
	a, ok := s.answers[questionID]
	if !ok || a.Kind != DomainEnum {
		return "", false
	}
	return a.Option, true
}

// positive reports whether an answered question counts as a positive symptom:
// true for booleans, above scale minimum for scales, any scoring option for
// enums.
func (s *AnswerSet) positive(questionID string) bool {
	a, ok := s.answers[questionID]
	if !ok {
		return false
	}
	switch a.Kind {
	case DomainBoolean:
		return a.Bool
	case DomainScale:
		return a.Scale > 0
	case DomainEnum:
		q, _ := QuestionByID(questionID)
		points, _ := q.Domain.optionPoints(a.Option)
		return points > 0
	}
	return false
}

// Answers lists the answered responses in catalog declaration order.
func (s *AnswerSet) Answers() []Answer {
	out := make([]Answer, 0, len(s.answers))
	for _, q := range questionCatalog {
		if a, ok := s.answers[q.ID]; ok {
			out = append(out, a)
		}
	}
	return out
}
