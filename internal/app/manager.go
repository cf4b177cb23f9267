package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"elhamas/internal/domain"
)

// Manager implements admin CRUD for one entity type. T is the persisted row,
// In the pointer-field input; nil input fields are left untouched on update.
type Manager[T any, In any] struct {
	name  string
	repo  domain.Repository
	store func(domain.Repository) domain.Store[T]
	order string

	defaults func(*T)
	apply    func(*T, *In)
	// check runs after field validation and before any write. row is nil on create.
	check func(ctx context.Context, row *T, in *In) error
	// finalize derives fields (slugs, timestamps) right before the write.
	finalize func(ctx context.Context, row *T, creating bool) error
	// derived reports whether a create conflict came from a generated value
	// that finalize can pick again, such as a slug taken by a concurrent write.
	derived func(in *In) bool
}

const maxCreateRetries = 5

func (m *Manager[T, In]) Name() string { return m.name }

func (m *Manager[T, In]) st() (domain.Store[T], error) {
	if m.repo == nil {
		return nil, domain.ErrUnavailable
	}
	return m.store(m.repo), nil
}

// List returns every row, inactive ones included.
func (m *Manager[T, In]) List(ctx context.Context) ([]T, error) {
	return m.ListWhere(ctx, nil)
}

func (m *Manager[T, In]) ListWhere(ctx context.Context, where map[string]any) ([]T, error) {
	st, err := m.st()
	if err != nil {
		return nil, err
	}
	rows, err := st.Find(ctx, domain.Filter{Where: where, Order: m.order})
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", m.name, err)
	}
	if rows == nil {
		rows = []T{}
	}
	return rows, nil
}

func (m *Manager[T, In]) Get(ctx context.Context, id string) (*T, error) {
	st, err := m.st()
	if err != nil {
		return nil, err
	}
	row, err := st.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get %s %s: %w", m.name, id, err)
	}
	return row, nil
}

// Create validates in, applies defaults and persists a new row.
func (m *Manager[T, In]) Create(ctx context.Context, in *In) (*T, error) {
	st, err := m.st()
	if err != nil {
		return nil, err
	}
	if err := validateInput(in); err != nil {
		return nil, err
	}
	if m.check != nil {
		if err := m.check(ctx, nil, in); err != nil {
			return nil, err
		}
	}
	for attempt := 1; ; attempt++ {
		row := new(T)
		if m.defaults != nil {
			m.defaults(row)
		}
		m.apply(row, in)
		if m.finalize != nil {
			if err := m.finalize(ctx, row, true); err != nil {
				return nil, err
			}
		}
		err := st.Create(ctx, row)
		if err == nil {
			return row, nil
		}
		if errors.Is(err, domain.ErrConflict) && m.derived != nil && m.derived(in) && attempt < maxCreateRetries {
			log.Debug().Str("resource", m.name).Int("attempt", attempt).Msg("generated value taken, retrying create")
			continue
		}
		return nil, fmt.Errorf("create %s: %w", m.name, err)
	}
}

// Update merges the submitted fields of in into the stored row.
func (m *Manager[T, In]) Update(ctx context.Context, id string, in *In) (*T, error) {
	st, err := m.st()
	if err != nil {
		return nil, err
	}
	if err := validatePresent(in); err != nil {
		return nil, err
	}
	row, err := st.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get %s %s: %w", m.name, id, err)
	}
	if m.check != nil {
		if err := m.check(ctx, row, in); err != nil {
			return nil, err
		}
	}
	m.apply(row, in)
	if m.finalize != nil {
		if err := m.finalize(ctx, row, false); err != nil {
			return nil, err
		}
	}
	if err := st.Save(ctx, row); err != nil {
		return nil, fmt.Errorf("update %s %s: %w", m.name, id, err)
	}
	return row, nil
}

// Delete removes the row. Rows referencing it are detached by the schema.
func (m *Manager[T, In]) Delete(ctx context.Context, id string) error {
	st, err := m.st()
	if err != nil {
		return err
	}
	if err := st.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete %s %s: %w", m.name, id, err)
	}
	return nil
}

// First returns the oldest row, for singleton content such as the discover card.
func (m *Manager[T, In]) First(ctx context.Context) (*T, error) {
	st, err := m.st()
	if err != nil {
		return nil, err
	}
	row, err := st.FindOne(ctx, domain.Filter{Order: "created_at ASC"})
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", m.name, err)
	}
	return row, nil
}

// Upsert updates the singleton row, creating it when none exists.
func (m *Manager[T, In]) Upsert(ctx context.Context, in *In, id func(*T) string) (*T, bool, error) {
	row, err := m.First(ctx)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		created, err := m.Create(ctx, in)
		return created, true, err
	case err != nil:
		return nil, false, err
	}
	updated, err := m.Update(ctx, id(row), in)
	return updated, false, err
}

/********** reference checks **********/

// mustExist reports a validation error on field when id is set but unknown.
func mustExist[T any](ctx context.Context, st domain.Store[T], field string, id *string) error {
	if id == nil || *id == "" {
		return nil
	}
	_, err := st.Get(ctx, *id)
	if errors.Is(err, domain.ErrNotFound) {
		return domain.Invalid(field, "%s does not exist", field)
	}
	return err
}
