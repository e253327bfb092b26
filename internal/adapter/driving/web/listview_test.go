package web

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ericfisherdev/grocerylist/internal/application"
	"github.com/ericfisherdev/grocerylist/internal/domain/model"
)

func TestListView_RenderReplacesInPlace(t *testing.T) {
	v := NewListView()
	v.RenderEntry(model.Entry{ID: "1", Value: "milk"})
	v.RenderEntry(model.Entry{ID: "2", Value: "eggs"})
	v.RenderEntry(model.Entry{ID: "1", Value: "oat milk"})

	rows, _ := v.Snapshot()
	assert.Equal(t, []model.Entry{
		{ID: "1", Value: "oat milk"},
		{ID: "2", Value: "eggs"},
	}, rows)
}

func TestListView_RemoveAndReset(t *testing.T) {
	v := NewListView()
	v.RenderEntry(model.Entry{ID: "1", Value: "milk"})
	v.RenderEntry(model.Entry{ID: "2", Value: "eggs"})
	v.SetContainerVisible(true)

	v.RemoveEntry("1")
	v.RemoveEntry("missing")
	rows, visible := v.Snapshot()
	assert.Equal(t, []model.Entry{{ID: "2", Value: "eggs"}}, rows)
	assert.True(t, visible)

	v.Reset()
	rows, _ = v.Snapshot()
	assert.Empty(t, rows)
}

func TestListView_SnapshotIsCopy(t *testing.T) {
	v := NewListView()
	v.RenderEntry(model.Entry{ID: "1", Value: "milk"})

	rows, _ := v.Snapshot()
	rows[0].Value = "changed"

	again, _ := v.Snapshot()
	assert.Equal(t, "milk", again[0].Value)
}

func TestToPageViewModel(t *testing.T) {
	rows := []model.Entry{{ID: "a b", Value: "milk"}}
	session := application.SessionState{Mode: model.EditModeEditing, TargetID: "a b", Draft: "milk"}
	notice := model.Notice{Message: "No edits have been made", Kind: model.NoticeDanger}

	page := toPageViewModel(rows, true, session, notice, "tok")

	assert.Equal(t, pageTitle, page.Title)
	assert.True(t, page.ContainerVisible)
	assert.Equal(t, "alert-danger", page.Notice.Class)
	assert.Equal(t, "edit", page.Form.SubmitLabel)
	assert.Equal(t, "milk", page.Form.Value)
	assert.Equal(t, "tok", page.Form.CSRFToken)
	assert.Equal(t, "/items/a%20b/edit", page.Rows[0].EditPath)
	assert.Equal(t, "/items/a%20b/delete", page.Rows[0].DeletePath)

	page = toPageViewModel(nil, false, application.SessionState{Mode: model.EditModeCreating}, model.Notice{}, "tok")
	assert.Equal(t, "submit", page.Form.SubmitLabel)
	assert.Empty(t, page.Form.Value)
	assert.Empty(t, page.Notice.Class)
	assert.Empty(t, page.Rows)
}
