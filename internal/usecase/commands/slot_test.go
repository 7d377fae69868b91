//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"quality-detailing/internal/domain/slot"
	"quality-detailing/internal/infra"
	"quality-detailing/internal/pkg/errs"
	"quality-detailing/internal/usecase/commands"
	commandsmock "quality-detailing/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type SlotCommandsTestSuite struct {
	suite.Suite
	mockCtrl *gomock.Controller
	mockRepo *commandsmock.MockSlotRepository
	commands commands.SlotCommands
}

func (s *SlotCommandsTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockRepo = commandsmock.NewMockSlotRepository(s.mockCtrl)
	s.commands = commands.NewSlotCommands(s.mockRepo)
}

func (s *SlotCommandsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestSlotCommandsSuite(t *testing.T) {
	suite.Run(t, new(SlotCommandsTestSuite))
}

func (s *SlotCommandsTestSuite) TestCreate() {
	start := time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)

	s.Run("success", func() {
		s.mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil).Times(1)

		view, err := s.commands.Create(context.Background(), start, nil)
		s.Require().NoError(err)
		s.Require().NotNil(view)
		s.Equal(start, view.SlotStart)
		s.Nil(view.SlotEnd)
	})

	s.Run("invalid range never reaches the repository", func() {
		end := start.Add(-time.Hour)
		view, err := s.commands.Create(context.Background(), start, &end)
		s.Require().ErrorIs(err, errs.ErrInvalidSlotRange)
		s.Nil(view)
	})
}

func (s *SlotCommandsTestSuite) TestCreateRange() {
	params := commands.CreateSlotRangeParams{
		StartDate: time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC),
		StartTime: slot.TimeOfDay{Hour: 9},
	}

	s.Run("expands one slot per day", func() {
		s.mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil).Times(5)

		views, err := s.commands.CreateRange(context.Background(), params)
		s.Require().NoError(err)
		s.Require().Len(views, 5)
		for i, view := range views {
			s.Equal(time.Date(2026, 9, 1+i, 9, 0, 0, 0, time.UTC), view.SlotStart)
			s.Nil(view.SlotEnd)
		}
	})

	s.Run("range over the ceiling is rejected before any write", func() {
		over := params
		over.EndDate = over.StartDate.AddDate(0, 0, slot.MaxRangeDays)

		views, err := s.commands.CreateRange(context.Background(), over)
		s.Require().ErrorIs(err, errs.ErrRangeTooLarge)
		s.Nil(views)
	})

	s.Run("reversed range is rejected before any write", func() {
		reversed := params
		reversed.EndDate = reversed.StartDate.AddDate(0, 0, -1)

		views, err := s.commands.CreateRange(context.Background(), reversed)
		s.Require().ErrorIs(err, errs.ErrInvalidRangeDates)
		s.Nil(views)
	})

	s.Run("failure mid-range keeps earlier days and stops", func() {
		gomock.InOrder(
			s.mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil).Times(2),
			s.mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
				Return(infra.WrapRepoErr("insert failed", nil)).Times(1),
		)

		views, err := s.commands.CreateRange(context.Background(), params)
		s.Require().ErrorIs(err, errs.ErrDatabaseOperationFailed)
		s.Len(views, 2)
	})
}

func (s *SlotCommandsTestSuite) TestDelete() {
	id := uuid.New()

	s.Run("success", func() {
		s.mockRepo.EXPECT().Delete(gomock.Any(), id).Return(nil).Times(1)
		s.Require().NoError(s.commands.Delete(context.Background(), id))
	})

	s.Run("missing slot maps to not found", func() {
		s.mockRepo.EXPECT().Delete(gomock.Any(), id).
			Return(infra.WrapRepoErr("no rows", nil, infra.KindNotFound)).Times(1)

		err := s.commands.Delete(context.Background(), id)
		s.Require().ErrorIs(err, errs.ErrSlotNotFound)
	})
}
