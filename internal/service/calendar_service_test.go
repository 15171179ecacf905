package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"lifehub-be/internal/apperror"
	"lifehub-be/internal/dto"
	"lifehub-be/internal/pkg/timeutil"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCalendarServiceForTest() (ICalendarService, INoteService) {
	factory := newFakeFactory()
	noteSvc := NewNoteService(factory, nil, nil)
	return NewCalendarService(factory, nil, nil, nil), noteSvc
}

func TestEventCreateRequiresTitleAndDate(t *testing.T) {
	svc, _ := newCalendarServiceForTest()
	userId := uuid.New()

	_, err := svc.Create(context.Background(), userId, &dto.CreateEventRequest{Date: "2026-03-05"})
	require.Error(t, err)
	assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))

	_, err = svc.Create(context.Background(), userId, &dto.CreateEventRequest{Title: "Standup"})
	require.Error(t, err)
	assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))
}

func TestEventCreateRejectsBadDateAndTime(t *testing.T) {
	svc, _ := newCalendarServiceForTest()
	userId := uuid.New()

	_, err := svc.Create(context.Background(), userId, &dto.CreateEventRequest{Title: "x", Date: "05/03/2026"})
	require.Error(t, err)
	assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))

	_, err = svc.Create(context.Background(), userId, &dto.CreateEventRequest{Title: "x", Date: "2026-03-05", StartTime: "25:00"})
	require.Error(t, err)
	assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))
}

func TestEventRejectsOverlongText(t *testing.T) {
	svc, _ := newCalendarServiceForTest()
	userId := uuid.New()

	_, err := svc.Create(context.Background(), userId, &dto.CreateEventRequest{
		Title: strings.Repeat("x", 201),
		Date:  "2026-03-05",
	})
	require.Error(t, err)
	assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))

	_, err = svc.Create(context.Background(), userId, &dto.CreateEventRequest{
		Title:       "x",
		Date:        "2026-03-05",
		Description: strings.Repeat("x", 1001),
	})
	require.Error(t, err)
	assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))

	created, err := svc.Create(context.Background(), userId, &dto.CreateEventRequest{Title: "x", Date: "2026-03-05"})
	require.NoError(t, err)

	longTitle := strings.Repeat("x", 201)
	err = svc.Update(context.Background(), userId, &dto.UpdateEventRequest{Id: created.Id, Title: &longTitle})
	require.Error(t, err)
	assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))

	detail, err := svc.Get(context.Background(), userId, created.Id)
	require.NoError(t, err)
	assert.Equal(t, "x", detail.Title)
}

func TestEventTimedListShape(t *testing.T) {
	svc, _ := newCalendarServiceForTest()
	userId := uuid.New()

	// A single-digit hour is accepted and normalized on the way in.
	created, err := svc.Create(context.Background(), userId, &dto.CreateEventRequest{
		Title:       "Standup",
		Date:        "2026-03-05",
		StartTime:   "9:00",
		EndTime:     "10:30",
		Description: "daily sync",
	})
	require.NoError(t, err)

	items, err := svc.List(context.Background(), userId)
	require.NoError(t, err)
	require.Len(t, items, 1)

	item := items[0]
	assert.Equal(t, created.Id, item.Id)
	assert.Equal(t, "Standup", item.Title)
	assert.Equal(t, "2026-03-05T09:00:00", item.Start)
	assert.Equal(t, "2026-03-05T10:30:00", item.End)
	assert.False(t, item.AllDay)
	assert.Equal(t, "#007bff", item.Color)
	assert.Equal(t, "09:00", item.ExtendedProps.StartTime)
	assert.Equal(t, "10:30", item.ExtendedProps.EndTime)
	assert.Equal(t, "daily sync", item.ExtendedProps.Description)
	assert.False(t, item.ExtendedProps.HasNote)
}

func TestEventAllDayListShape(t *testing.T) {
	svc, _ := newCalendarServiceForTest()
	userId := uuid.New()

	_, err := svc.Create(context.Background(), userId, &dto.CreateEventRequest{
		Title: "Holiday",
		Date:  "2026-03-05",
		Color: "#dc3545",
	})
	require.NoError(t, err)

	items, err := svc.List(context.Background(), userId)
	require.NoError(t, err)
	require.Len(t, items, 1)

	assert.Equal(t, "2026-03-05", items[0].Start)
	assert.Empty(t, items[0].End)
	assert.True(t, items[0].AllDay)
	assert.Equal(t, "#dc3545", items[0].Color)
}

func TestEventLinkedNotePreview(t *testing.T) {
	svc, noteSvc := newCalendarServiceForTest()
	userId := uuid.New()

	note, err := noteSvc.Create(context.Background(), userId, &dto.CreateNoteRequest{Data: "agenda for standup"})
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), userId, &dto.CreateEventRequest{
		Title:  "Standup",
		Date:   "2026-03-05",
		NoteId: &note.Id,
	})
	require.NoError(t, err)

	items, err := svc.List(context.Background(), userId)
	require.NoError(t, err)
	require.Len(t, items, 1)

	assert.True(t, items[0].ExtendedProps.HasNote)
	assert.Equal(t, "agenda for standup", items[0].ExtendedProps.NoteContent)
}

func TestEventDanglingNoteTolerated(t *testing.T) {
	svc, noteSvc := newCalendarServiceForTest()
	userId := uuid.New()

	note, err := noteSvc.Create(context.Background(), userId, &dto.CreateNoteRequest{Data: "soon gone"})
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), userId, &dto.CreateEventRequest{
		Title:  "Standup",
		Date:   "2026-03-05",
		NoteId: &note.Id,
	})
	require.NoError(t, err)

	require.NoError(t, noteSvc.Delete(context.Background(), userId, note.Id.String()))

	items, err := svc.List(context.Background(), userId)
	require.NoError(t, err)
	require.Len(t, items, 1)

	// The stale link survives but resolves to nothing.
	assert.True(t, items[0].ExtendedProps.HasNote)
	assert.Empty(t, items[0].ExtendedProps.NoteContent)
}

func TestEventOwnershipGuard(t *testing.T) {
	svc, _ := newCalendarServiceForTest()
	owner := uuid.New()
	intruder := uuid.New()

	created, err := svc.Create(context.Background(), owner, &dto.CreateEventRequest{Title: "Mine", Date: "2026-03-05"})
	require.NoError(t, err)

	_, err = svc.Get(context.Background(), intruder, created.Id)
	require.Error(t, err)
	assert.Equal(t, apperror.KindForbidden, apperror.KindOf(err))

	_, err = svc.Get(context.Background(), owner, uuid.New())
	require.Error(t, err)
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))

	err = svc.Delete(context.Background(), intruder, created.Id)
	require.Error(t, err)
	assert.Equal(t, apperror.KindForbidden, apperror.KindOf(err))
}

func TestEventPartialUpdate(t *testing.T) {
	svc, _ := newCalendarServiceForTest()
	userId := uuid.New()

	created, err := svc.Create(context.Background(), userId, &dto.CreateEventRequest{
		Title:     "Standup",
		Date:      "2026-03-05",
		StartTime: "09:00",
		EndTime:   "10:30",
	})
	require.NoError(t, err)

	// Only the title changes; everything else stays.
	newTitle := "Standup (moved)"
	err = svc.Update(context.Background(), userId, &dto.UpdateEventRequest{Id: created.Id, Title: &newTitle})
	require.NoError(t, err)

	detail, err := svc.Get(context.Background(), userId, created.Id)
	require.NoError(t, err)
	assert.Equal(t, "Standup (moved)", detail.Title)
	assert.Equal(t, "09:00", detail.StartTime)
	assert.Equal(t, "10:30", detail.EndTime)

	// Present-but-empty times clear them, turning it all-day.
	empty := ""
	err = svc.Update(context.Background(), userId, &dto.UpdateEventRequest{
		Id:        created.Id,
		StartTime: &empty,
		EndTime:   &empty,
	})
	require.NoError(t, err)

	items, err := svc.List(context.Background(), userId)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "2026-03-05", items[0].Start)
	assert.True(t, items[0].AllDay)
}

func TestEventUpdateClearsNoteLink(t *testing.T) {
	svc, noteSvc := newCalendarServiceForTest()
	userId := uuid.New()

	note, err := noteSvc.Create(context.Background(), userId, &dto.CreateNoteRequest{Data: "linked"})
	require.NoError(t, err)

	created, err := svc.Create(context.Background(), userId, &dto.CreateEventRequest{
		Title:  "Standup",
		Date:   "2026-03-05",
		NoteId: &note.Id,
	})
	require.NoError(t, err)

	empty := ""
	err = svc.Update(context.Background(), userId, &dto.UpdateEventRequest{Id: created.Id, NoteId: &empty})
	require.NoError(t, err)

	detail, err := svc.Get(context.Background(), userId, created.Id)
	require.NoError(t, err)
	assert.Nil(t, detail.NoteId)
}

func TestCalendarStats(t *testing.T) {
	factory := newFakeFactory()
	svc := NewCalendarService(factory, nil, nil, nil)
	userId := uuid.New()

	today := timeutil.Today()
	sameMonth := today.AddDate(0, 0, 1)
	if sameMonth.Month() != today.Month() {
		sameMonth = today.AddDate(0, 0, -1)
	}
	otherMonth := today.AddDate(0, 2, 0)

	for _, d := range []time.Time{today, sameMonth, otherMonth} {
		_, err := svc.Create(context.Background(), userId, &dto.CreateEventRequest{
			Title: "e",
			Date:  timeutil.FormatDate(d),
		})
		require.NoError(t, err)
	}

	stats, err := svc.Stats(context.Background(), userId)
	require.NoError(t, err)

	assert.Equal(t, 3, stats.Total)
	assert.Equal(t, 2, stats.Month)
	assert.Equal(t, 1, stats.Today)

	// Another user sees only their own events.
	other, err := svc.Stats(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Equal(t, 0, other.Total)
}

func TestCalendarStatsCacheInvalidatedOnMutation(t *testing.T) {
	factory := newFakeFactory()
	svc := NewCalendarService(factory, nil, nil, gocache.New(time.Minute, time.Minute))
	userId := uuid.New()

	stats, err := svc.Stats(context.Background(), userId)
	require.NoError(t, err)
	assert.Equal(t, 0, stats.Total)

	_, err = svc.Create(context.Background(), userId, &dto.CreateEventRequest{
		Title: "e",
		Date:  timeutil.FormatDate(timeutil.Today()),
	})
	require.NoError(t, err)

	stats, err = svc.Stats(context.Background(), userId)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Total)
}
