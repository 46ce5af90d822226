package service

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"empdir/internal/model"
	repoMocks "empdir/internal/repository/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func ada() model.Employee {
	return model.Employee{
		EmpID:        "100",
		FirstName:    "Ada",
		LastName:     "Lovelace",
		PrimarySkill: "Math",
		Location:     "London",
	}
}

func TestEmployeeService_Add(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		input      model.Employee
		setupMocks func(mRepo *repoMocks.MockEmployeeRepository)
		want       *model.Employee
		wantErr    error
		wantErrMsg string
	}{
		{
			name:  "happy path",
			input: ada(),
			setupMocks: func(mRepo *repoMocks.MockEmployeeRepository) {
				mRepo.On("Create", ctx, mock.MatchedBy(func(e *model.Employee) bool {
					return *e == ada()
				})).Return(nil)
			},
			want: func() *model.Employee { e := ada(); return &e }(),
		},
		{
			name:  "empty fields are passed through",
			input: model.Employee{EmpID: "7"},
			setupMocks: func(mRepo *repoMocks.MockEmployeeRepository) {
				mRepo.On("Create", ctx, &model.Employee{EmpID: "7"}).Return(nil)
			},
			want: &model.Employee{EmpID: "7"},
		},
		{
			name:  "duplicate key",
			input: ada(),
			setupMocks: func(mRepo *repoMocks.MockEmployeeRepository) {
				mRepo.On("Create", ctx, mock.Anything).Return(errors.New("duplicate key"))
			},
			wantErr:    ErrPersistence,
			wantErrMsg: "persistence failure: insert employee: duplicate key",
		},
		{
			name:  "connection lost",
			input: ada(),
			setupMocks: func(mRepo *repoMocks.MockEmployeeRepository) {
				mRepo.On("Create", ctx, mock.Anything).Return(sql.ErrConnDone)
			},
			wantErr: sql.ErrConnDone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mRepo := new(repoMocks.MockEmployeeRepository)
			tt.setupMocks(mRepo)
			svc := NewEmployeeService(mRepo)

			got, err := svc.Add(ctx, tt.input)

			if tt.wantErr != nil || tt.wantErrMsg != "" {
				assert.Error(t, err)
				assert.Nil(t, got)
				if tt.wantErr != nil {
					assert.ErrorIs(t, err, tt.wantErr)
				}
				if tt.wantErrMsg != "" {
					assert.EqualError(t, err, tt.wantErrMsg)
				}
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
			mRepo.AssertExpectations(t)
		})
	}
}

func TestEmployeeService_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		mRepo := new(repoMocks.MockEmployeeRepository)
		e := ada()
		mRepo.On("FindByID", ctx, "100").Return(&e, nil)

		got, err := NewEmployeeService(mRepo).Get(ctx, "100")

		assert.NoError(t, err)
		assert.Equal(t, ada(), *got)
		mRepo.AssertExpectations(t)
	})

	t.Run("not found", func(t *testing.T) {
		mRepo := new(repoMocks.MockEmployeeRepository)
		mRepo.On("FindByID", ctx, "999").Return(nil, sql.ErrNoRows)

		got, err := NewEmployeeService(mRepo).Get(ctx, "999")

		assert.ErrorIs(t, err, ErrNotFound)
		assert.NotErrorIs(t, err, ErrPersistence)
		assert.Nil(t, got)
	})

	t.Run("store error", func(t *testing.T) {
		mRepo := new(repoMocks.MockEmployeeRepository)
		mRepo.On("FindByID", ctx, "100").Return(nil, errors.New("connection refused"))

		got, err := NewEmployeeService(mRepo).Get(ctx, "100")

		assert.ErrorIs(t, err, ErrPersistence)
		assert.NotErrorIs(t, err, ErrNotFound)
		assert.EqualError(t, err, "persistence failure: find employee: connection refused")
		assert.Nil(t, got)
	})
}
