package ds

import (
	"database/sql/driver"
	"errors"
	"fmt"
)

// ProjectStatus - статус проекта. Множество значений закрыто: значения
// вне списка не проходят ParseProjectStatus и Scan.
type ProjectStatus string

const (
	StatusDraft     ProjectStatus = "DRAFT"
	StatusFormed    ProjectStatus = "FORMED"
	StatusCompleted ProjectStatus = "COMPLETED"
	StatusRejected  ProjectStatus = "REJECTED"
	StatusDeleted   ProjectStatus = "DELETED"
)

// ErrIllegalTransition - базовая ошибка для недопустимых переходов
var ErrIllegalTransition = errors.New("illegal status transition")

// TransitionError описывает конкретный недопустимый переход
type TransitionError struct {
	From ProjectStatus
	To   ProjectStatus
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("cannot move project from %s to %s", e.From, e.To)
}

func (e *TransitionError) Is(target error) bool {
	return target == ErrIllegalTransition
}

// transitions - единственный источник правил жизненного цикла проекта
var transitions = map[ProjectStatus][]ProjectStatus{
	StatusDraft:  {StatusFormed, StatusDeleted},
	StatusFormed: {StatusCompleted, StatusRejected},
}

func ParseProjectStatus(s string) (ProjectStatus, error) {
	switch st := ProjectStatus(s); st {
	case StatusDraft, StatusFormed, StatusCompleted, StatusRejected, StatusDeleted:
		return st, nil
	}
	return "", fmt.Errorf("unknown project status %q", s)
}

// CanTransitionTo возвращает *TransitionError, если переход запрещен
func (s ProjectStatus) CanTransitionTo(to ProjectStatus) error {
	for _, allowed := range transitions[s] {
		if allowed == to {
			return nil
		}
	}
	return &TransitionError{From: s, To: to}
}

// IsResolution - финальный статус, который может выставить менеджер
func (s ProjectStatus) IsResolution() bool {
	return s == StatusCompleted || s == StatusRejected
}

func (s ProjectStatus) Value() (driver.Value, error) {
	return string(s), nil
}

func (s *ProjectStatus) Scan(src any) error {
	raw, err := scanString(src)
	if err != nil {
		return err
	}
	parsed, err := ParseProjectStatus(raw)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// BookFormat - формат издания
type BookFormat string

const (
	FormatA4     BookFormat = "A4"
	FormatA5     BookFormat = "A5"
	FormatA6     BookFormat = "A6"
	FormatSquare BookFormat = "SQUARE"
	FormatB5     BookFormat = "B5"
)

func ParseBookFormat(s string) (BookFormat, error) {
	switch f := BookFormat(s); f {
	case FormatA4, FormatA5, FormatA6, FormatSquare, FormatB5:
		return f, nil
	}
	return "", fmt.Errorf("unknown book format %q", s)
}

func (f BookFormat) Value() (driver.Value, error) {
	return string(f), nil
}

func (f *BookFormat) Scan(src any) error {
	raw, err := scanString(src)
	if err != nil {
		return err
	}
	parsed, err := ParseBookFormat(raw)
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}
