package publishduereminders

import (
	"context"
	c "petminder/internal/core/domain/common"
	e "petminder/internal/core/domain/errors"
	"petminder/internal/core/domain/logging"
	"petminder/internal/core/domain/reminder"
	uow "petminder/internal/core/domain/unit_of_work"
	"petminder/internal/core/services"
	"time"
)

type Input struct{}

type Result struct {
	PublishedCount int
}

type service struct {
	log        logging.Logger
	unitOfWork uow.UnitOfWork
	publisher  reminder.DuePublisher
	now        func() time.Time
	batchSize  uint
}

// New returns a service publishing reminders that became due since the last
// scan. A reminder is published once per fire time; rows locked by a
// concurrent scan are skipped.
func New(
	log logging.Logger,
	unitOfWork uow.UnitOfWork,
	publisher reminder.DuePublisher,
	now func() time.Time,
	batchSize uint,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if unitOfWork == nil {
		panic(e.NewNilArgumentError("unitOfWork"))
	}
	if publisher == nil {
		panic(e.NewNilArgumentError("publisher"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	if batchSize == 0 {
		panic(e.NewInvalidStateError("batch size must be positive"))
	}
	return &service{
		log:        log,
		unitOfWork: unitOfWork,
		publisher:  publisher,
		now:        now,
		batchSize:  batchSize,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	uow, err := s.unitOfWork.Begin(ctx)
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("input", input))
		return result, err
	}
	defer uow.Rollback(ctx)

	now := s.now()
	dueReminders, err := uow.Reminders().Read(ctx, reminder.ReadOptions{
		IsCompletedEquals:   c.NewOptional(false, true),
		FireAtNotAfter:      c.NewOptional(now, true),
		Limit:               c.NewOptional(s.batchSize, true),
		IsNotPublished:      true,
		ForUpdateSkipLocked: true,
	})
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("input", input))
		return result, err
	}

	s.log.Debug(ctx, "Got due reminders for publishing.", logging.Entry("count", len(dueReminders)))
	publishedIDs := make([]reminder.ID, 0, len(dueReminders))
	var publishErr error
	for ix, rem := range dueReminders {
		if publishErr = s.publisher.PublishDue(ctx, rem, now); publishErr != nil {
			logging.Error(
				ctx,
				s.log,
				publishErr,
				logging.Entry("index", ix),
				logging.Entry("reminderID", rem.ID),
				logging.Entry("publishedIDs", publishedIDs),
			)
			break
		}
		_, err := uow.Reminders().Update(ctx, reminder.UpdateInput{
			ID:                      rem.ID,
			DoPublishedFireAtUpdate: true,
			PublishedFireAt:         c.NewOptional(rem.FireAt, true),
		})
		if err != nil {
			logging.Error(ctx, s.log, err, logging.Entry("reminderID", rem.ID))
			return result, err
		}
		publishedIDs = append(publishedIDs, rem.ID)
	}

	if err := uow.Commit(ctx); err != nil {
		logging.Error(ctx, s.log, err)
		return result, err
	}

	result.PublishedCount = len(publishedIDs)
	if len(publishedIDs) > 0 {
		s.log.Info(
			ctx,
			"Due reminders successfully published.",
			logging.Entry("publishedCount", len(publishedIDs)),
			logging.Entry("publishedIDs", publishedIDs),
		)
	}
	return result, publishErr
}
