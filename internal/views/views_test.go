package views

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/five82/homes/internal/homes"
	"github.com/five82/homes/internal/homes/mocks"
)

var errBoom = errors.New("boom")

func sampleHome(id string) homes.Home {
	return homes.Home{
		ID: homes.ID(id),
		Listing: homes.Listing{
			Title:         "Cozy Cabin",
			Description:   "Quiet spot in the woods",
			Location:      "Asheville, NC",
			PricePerNight: 120,
			Guests:        4,
			Bedrooms:      2,
			Bathrooms:     1,
			Amenities:     []string{"wifi", "fireplace"},
		},
	}
}

// run executes cmd and returns its message; nil commands yield nil.
func run(t *testing.T, cmd tea.Cmd) tea.Msg {
	t.Helper()
	if cmd == nil {
		return nil
	}
	return cmd()
}

func noticeFrom(t *testing.T, cmd tea.Cmd) NoticeMsg {
	t.Helper()
	require.NotNil(t, cmd, "expected a notice command")
	msg, ok := run(t, cmd).(NoticeMsg)
	require.True(t, ok, "command did not produce a NoticeMsg")
	return msg
}

func TestList_MountIssuesExactlyOneRequest(t *testing.T) {
	ctrl := gomock.NewController(t)
	gw := mocks.NewMockGateway(ctrl)
	want := []homes.Home{sampleHome("1"), sampleHome("2")}
	gw.EXPECT().ListHomes(gomock.Any()).Return(want, nil).Times(1)

	l := NewList(gw, zerolog.Nop())
	assert.Equal(t, StatusLoading, l.Status())

	cmd := l.Mount(context.Background())
	require.NotNil(t, cmd)
	assert.Nil(t, l.Mount(context.Background()), "second mount must not refetch")

	assert.Nil(t, l.Update(run(t, cmd)))
	assert.Equal(t, StatusSuccess, l.Status())
	assert.Equal(t, want, l.Homes())
	assert.False(t, l.Empty())
	assert.Empty(t, l.Err())
}

func TestList_EmptyResult(t *testing.T) {
	ctrl := gomock.NewController(t)
	gw := mocks.NewMockGateway(ctrl)
	gw.EXPECT().ListHomes(gomock.Any()).Return([]homes.Home{}, nil)

	l := NewList(gw, zerolog.Nop())
	l.Update(run(t, l.Mount(context.Background())))

	assert.Equal(t, StatusSuccess, l.Status())
	assert.True(t, l.Empty())
	assert.Nil(t, l.Homes())
}

func TestList_FailureShowsFixedMessage(t *testing.T) {
	ctrl := gomock.NewController(t)
	gw := mocks.NewMockGateway(ctrl)
	gw.EXPECT().ListHomes(gomock.Any()).Return(nil, errBoom)

	l := NewList(gw, zerolog.Nop())
	l.Update(run(t, l.Mount(context.Background())))

	assert.Equal(t, StatusError, l.Status())
	assert.Equal(t, MsgListFailed, l.Err())
	assert.False(t, l.Empty())
}

func TestList_ResultAfterUnmountIsDiscarded(t *testing.T) {
	ctrl := gomock.NewController(t)
	gw := mocks.NewMockGateway(ctrl)
	gw.EXPECT().ListHomes(gomock.Any()).Return([]homes.Home{sampleHome("1")}, nil)

	l := NewList(gw, zerolog.Nop())
	cmd := l.Mount(context.Background())
	l.Unmount()
	l.Update(run(t, cmd))

	assert.Equal(t, StatusLoading, l.Status())
	assert.Nil(t, l.Homes())
}

func TestList_IgnoresResultsFromAnotherMount(t *testing.T) {
	ctrl := gomock.NewController(t)
	gw := mocks.NewMockGateway(ctrl)
	gw.EXPECT().ListHomes(gomock.Any()).Return([]homes.Home{sampleHome("old")}, nil)
	gw.EXPECT().ListHomes(gomock.Any()).Return([]homes.Home{sampleHome("new")}, nil)

	first := NewList(gw, zerolog.Nop())
	firstCmd := first.Mount(context.Background())
	first.Unmount()

	second := NewList(gw, zerolog.Nop())
	secondCmd := second.Mount(context.Background())

	second.Update(run(t, firstCmd))
	assert.Equal(t, StatusLoading, second.Status())

	second.Update(run(t, secondCmd))
	require.Len(t, second.Homes(), 1)
	assert.Equal(t, homes.ID("new"), second.Homes()[0].ID)
}

func TestList_NilGatewayFailsWithoutCommand(t *testing.T) {
	l := NewList(nil, zerolog.Nop())
	assert.Nil(t, l.Mount(context.Background()))
	assert.Equal(t, StatusError, l.Status())
	assert.Equal(t, MsgListFailed, l.Err())
}

func TestDetails_MissingIDSendsNothing(t *testing.T) {
	ctrl := gomock.NewController(t)
	gw := mocks.NewMockGateway(ctrl)

	for _, id := range []homes.ID{"", "   "} {
		d := NewDetails(gw, zerolog.Nop(), id)
		assert.Nil(t, d.Mount(context.Background()))
		assert.Equal(t, StatusError, d.Status())
		assert.Equal(t, MsgMissingID, d.Err())
		assert.True(t, d.MissingID())
		assert.False(t, d.RequestDelete())
	}
}

func TestDetails_LoadsHome(t *testing.T) {
	ctrl := gomock.NewController(t)
	gw := mocks.NewMockGateway(ctrl)
	want := sampleHome("7")
	gw.EXPECT().GetHome(gomock.Any(), homes.ID("7")).Return(want, nil).Times(1)

	d := NewDetails(gw, zerolog.Nop(), "7")
	cmd := d.Mount(context.Background())
	require.NotNil(t, cmd)
	assert.Nil(t, d.Mount(context.Background()))
	d.Update(run(t, cmd))

	got, ok := d.Home()
	require.True(t, ok)
	assert.Equal(t, want, got)
	assert.Equal(t, StatusSuccess, d.Status())
}

func TestDetails_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	gw := mocks.NewMockGateway(ctrl)
	notFound := &homes.Error{Op: "get home", Kind: homes.KindStatus, Status: 404}
	gw.EXPECT().GetHome(gomock.Any(), homes.ID("99")).Return(homes.Home{}, notFound)

	d := NewDetails(gw, zerolog.Nop(), "99")
	d.Update(run(t, d.Mount(context.Background())))

	assert.Equal(t, StatusError, d.Status())
	assert.Equal(t, MsgHomeNotFound, d.Err())
	assert.False(t, d.MissingID())
	_, ok := d.Home()
	assert.False(t, ok)
}

func loadedDetails(t *testing.T, gw *mocks.MockGateway, id string) *Details {
	t.Helper()
	gw.EXPECT().GetHome(gomock.Any(), homes.ID(id)).Return(sampleHome(id), nil)
	d := NewDetails(gw, zerolog.Nop(), homes.ID(id))
	d.Update(run(t, d.Mount(context.Background())))
	require.Equal(t, StatusSuccess, d.Status())
	return d
}

func TestDetails_DeleteConfirmedNavigatesOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	gw := mocks.NewMockGateway(ctrl)
	d := loadedDetails(t, gw, "5")
	gw.EXPECT().DeleteHome(gomock.Any(), homes.ID("5")).Return(nil).Times(1)

	assert.Nil(t, d.ConfirmDelete(context.Background()), "confirm without request must be ignored")
	require.True(t, d.RequestDelete())
	assert.False(t, d.RequestDelete(), "confirmation already open")
	assert.True(t, d.Confirming())

	cmd := d.ConfirmDelete(context.Background())
	require.NotNil(t, cmd)
	assert.True(t, d.Deleting())
	assert.Nil(t, d.ConfirmDelete(context.Background()))

	notice := noticeFrom(t, d.Update(run(t, cmd)))
	assert.Equal(t, MsgDeleted, notice.Text)
	assert.False(t, notice.Failure)
	require.NotNil(t, notice.Then)
	assert.Equal(t, RouteList, notice.Then.Route)

	assert.False(t, d.Deleting())
	assert.False(t, d.RequestDelete(), "deleted home cannot be deleted again")
}

func TestDetails_DeleteCancelledSendsNothing(t *testing.T) {
	ctrl := gomock.NewController(t)
	gw := mocks.NewMockGateway(ctrl)
	d := loadedDetails(t, gw, "5")

	require.True(t, d.RequestDelete())
	d.CancelDelete()
	assert.False(t, d.Confirming())
	assert.Nil(t, d.ConfirmDelete(context.Background()))
	_, ok := d.Home()
	assert.True(t, ok)
}

func TestDetails_DeleteFailureKeepsHome(t *testing.T) {
	ctrl := gomock.NewController(t)
	gw := mocks.NewMockGateway(ctrl)
	d := loadedDetails(t, gw, "5")
	gw.EXPECT().DeleteHome(gomock.Any(), homes.ID("5")).Return(errBoom)

	require.True(t, d.RequestDelete())
	notice := noticeFrom(t, d.Update(run(t, d.ConfirmDelete(context.Background()))))

	assert.Equal(t, MsgDeleteFailed, notice.Text)
	assert.True(t, notice.Failure)
	assert.Nil(t, notice.Then)

	got, ok := d.Home()
	require.True(t, ok)
	assert.Equal(t, homes.ID("5"), got.ID)
	assert.True(t, d.RequestDelete(), "retry is allowed after a failure")
}

func TestDetails_DeleteResultAfterUnmountIsDiscarded(t *testing.T) {
	ctrl := gomock.NewController(t)
	gw := mocks.NewMockGateway(ctrl)
	d := loadedDetails(t, gw, "5")
	gw.EXPECT().DeleteHome(gomock.Any(), homes.ID("5")).Return(nil)

	require.True(t, d.RequestDelete())
	cmd := d.ConfirmDelete(context.Background())
	d.Unmount()
	assert.Nil(t, d.Update(run(t, cmd)))
}

func TestForm_DefaultsAndConversion(t *testing.T) {
	f := NewForm()
	assert.Equal(t, "1", f.Value(FieldGuests))
	assert.Equal(t, "1", f.Value(FieldBedrooms))
	assert.Equal(t, "1", f.Value(FieldBathrooms))
	assert.Equal(t, []Field{FieldTitle, FieldDescription, FieldLocation}, f.Missing())

	f.Set(FieldTitle, "Loft")
	f.Set(FieldDescription, "Bright")
	f.Set(FieldLocation, "Austin")
	f.Set(FieldPricePerNight, "abc")
	f.Set(FieldGuests, "3 people")
	f.Set(FieldAmenities, "wifi, , pool,")
	assert.Empty(t, f.Missing())

	got := f.Listing()
	assert.Equal(t, homes.Listing{
		Title:       "Loft",
		Description: "Bright",
		Location:    "Austin",
		Guests:      3,
		Bedrooms:    1,
		Bathrooms:   1,
		Amenities:   []string{"wifi", "pool"},
	}, got)
}

func TestForm_RequiredFlags(t *testing.T) {
	var required []Field
	for _, f := range Fields() {
		if f.Required() {
			required = append(required, f)
		}
	}
	assert.Equal(t, []Field{FieldTitle, FieldDescription, FieldLocation}, required)
}

func filledCreate(gw homes.Gateway) *Create {
	c := NewCreate(gw, zerolog.Nop())
	c.Mount(context.Background())
	c.SetField(FieldTitle, "Loft")
	c.SetField(FieldDescription, "Bright")
	c.SetField(FieldLocation, "Austin")
	c.SetField(FieldPricePerNight, "150")
	c.SetField(FieldAmenities, "wifi,parking")
	return c
}

func TestCreate_DoubleSubmitSendsOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	gw := mocks.NewMockGateway(ctrl)
	c := filledCreate(gw)

	want := homes.Listing{
		Title:         "Loft",
		Description:   "Bright",
		Location:      "Austin",
		PricePerNight: 150,
		Guests:        1,
		Bedrooms:      1,
		Bathrooms:     1,
		Amenities:     []string{"wifi", "parking"},
	}
	gw.EXPECT().CreateHome(gomock.Any(), want).
		Return(homes.Home{ID: "9", Listing: want}, nil).Times(1)

	cmd := c.Submit(context.Background())
	require.NotNil(t, cmd)
	assert.True(t, c.Submitting())
	assert.Nil(t, c.Submit(context.Background()))

	notice := noticeFrom(t, c.Update(run(t, cmd)))
	assert.Equal(t, MsgCreated, notice.Text)
	assert.False(t, notice.Failure)
	require.NotNil(t, notice.Then)
	assert.Equal(t, RouteList, notice.Then.Route)
	assert.False(t, c.Submitting())
}

func TestCreate_MissingFieldsBlockSubmit(t *testing.T) {
	ctrl := gomock.NewController(t)
	gw := mocks.NewMockGateway(ctrl)
	c := NewCreate(gw, zerolog.Nop())
	c.Mount(context.Background())
	c.SetField(FieldTitle, "Loft")

	assert.Nil(t, c.Submit(context.Background()))
	assert.Equal(t, []Field{FieldDescription, FieldLocation}, c.Missing())
	assert.False(t, c.Submitting())

	c.SetField(FieldLocation, "Austin")
	assert.Equal(t, []Field{FieldDescription}, c.Missing())
}

func TestCreate_FailureKeepsForm(t *testing.T) {
	ctrl := gomock.NewController(t)
	gw := mocks.NewMockGateway(ctrl)
	c := filledCreate(gw)
	gw.EXPECT().CreateHome(gomock.Any(), gomock.Any()).Return(homes.Home{}, errBoom)

	notice := noticeFrom(t, c.Update(run(t, c.Submit(context.Background()))))
	assert.Equal(t, MsgCreateFailed, notice.Text)
	assert.True(t, notice.Failure)
	assert.Nil(t, notice.Then)
	assert.Equal(t, "Loft", c.Form().Title)
	assert.False(t, c.Submitting())
}

func TestCreate_ResultAfterUnmountIsDiscarded(t *testing.T) {
	ctrl := gomock.NewController(t)
	gw := mocks.NewMockGateway(ctrl)
	c := filledCreate(gw)
	gw.EXPECT().CreateHome(gomock.Any(), gomock.Any()).Return(homes.Home{ID: "1"}, nil)

	cmd := c.Submit(context.Background())
	c.Unmount()
	assert.Nil(t, c.Update(run(t, cmd)))
	assert.Nil(t, c.Submit(context.Background()), "unmounted form cannot submit")
}
