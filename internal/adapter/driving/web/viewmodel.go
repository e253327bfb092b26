package web

import (
	"net/url"

	vm "github.com/ericfisherdev/grocerylist/internal/adapter/driving/web/viewmodel"
	"github.com/ericfisherdev/grocerylist/internal/application"
	"github.com/ericfisherdev/grocerylist/internal/domain/model"
)

const pageTitle = "Grocery Bud"

// toPageViewModel assembles the page from the presenter snapshot, the edit
// session, and the current notice.
func toPageViewModel(
	rows []model.Entry,
	visible bool,
	session application.SessionState,
	notice model.Notice,
	csrfToken string,
) vm.PageViewModel {
	page := vm.PageViewModel{
		Title:            pageTitle,
		Notice:           toNoticeViewModel(notice),
		Form:             toFormViewModel(session, csrfToken),
		Rows:             make([]vm.RowViewModel, 0, len(rows)),
		ContainerVisible: visible,
	}

	for _, e := range rows {
		page.Rows = append(page.Rows, toRowViewModel(e))
	}

	return page
}

func toRowViewModel(e model.Entry) vm.RowViewModel {
	escaped := url.PathEscape(e.ID)
	return vm.RowViewModel{
		ID:         e.ID,
		Value:      e.Value,
		EditPath:   "/items/" + escaped + "/edit",
		DeletePath: "/items/" + escaped + "/delete",
	}
}

func toNoticeViewModel(n model.Notice) vm.NoticeViewModel {
	if n.IsZero() {
		return vm.NoticeViewModel{}
	}
	return vm.NoticeViewModel{
		Message: n.Message,
		Class:   "alert-" + string(n.Kind),
	}
}

func toFormViewModel(s application.SessionState, csrfToken string) vm.FormViewModel {
	form := vm.FormViewModel{
		SubmitLabel: "submit",
		CSRFToken:   csrfToken,
	}
	if s.Mode == model.EditModeEditing {
		form.Editing = true
		form.Value = s.Draft
		form.SubmitLabel = "edit"
	}
	return form
}
