package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/SscSPs/business_panel/internal/core/domain"
	portssvc "github.com/SscSPs/business_panel/internal/core/ports/services"
	"github.com/SscSPs/business_panel/internal/middleware"
	"github.com/gin-gonic/gin"
)

// ScreenView is the Data of a list screen page.
type ScreenView[T any, F any] struct {
	Base      string
	Action    string // where the modal form posts
	State     portssvc.ScreenState[T, F]
	Entries   *portssvc.EntryDialog
	Heading   string
	AddLabel  string
	EditLabel string
}

// screenHandler serves one ListScreen: the list, the create/edit modal and
// the delete confirmation. Every request gets a fresh screen from the
// session's workspace.
type screenHandler[T any, F any] struct {
	*baseHandler
	path     string
	template string
	screen   func(*portssvc.Workspace) portssvc.ListScreen[T, F]
	decorate func(*ScreenView[T, F])
	// extra runs after a successful load of the list page
	extra func(c *gin.Context, ws *portssvc.Workspace, view *ScreenView[T, F]) error
}

func registerScreenRoutes[T any, F any](rg *gin.RouterGroup, h *screenHandler[T, F]) {
	rg.GET(h.path, h.list)
	rg.POST(h.path, h.create)
	rg.POST(h.path+"/:id", h.update)
	rg.POST(h.path+"/:id/delete", h.remove)
}

func (h *screenHandler[T, F]) list(c *gin.Context) {
	ctx := c.Request.Context()
	ws := h.workspace(c)
	screen := h.screen(ws)

	err := screen.Load(ctx)
	if h.expired(c, err) {
		return
	}
	if err == nil {
		err = h.openFromQuery(ctx, c, screen)
		if h.expired(c, err) {
			return
		}
	}

	view := h.view(screen)
	if err == nil && h.extra != nil {
		if extraErr := h.extra(c, ws, &view); h.expired(c, extraErr) {
			return
		}
	}
	h.render(c, statusFor(err), h.template, h.path, view)
}

// openFromQuery applies ?new, ?edit=id and ?delete=id.
func (h *screenHandler[T, F]) openFromQuery(ctx context.Context, c *gin.Context, screen portssvc.ListScreen[T, F]) error {
	switch {
	case c.Query("new") != "":
		screen.OpenCreate()
	case c.Query("edit") != "":
		return screen.OpenEdit(domain.ID(c.Query("edit")))
	case c.Query("delete") != "":
		// ask first; the prompt is answered by posting to the delete route
		return screen.Delete(ctx, domain.ID(c.Query("delete")), func(string) bool { return false })
	}
	return nil
}

func (h *screenHandler[T, F]) create(c *gin.Context) {
	h.submit(c, "")
}

func (h *screenHandler[T, F]) update(c *gin.Context) {
	h.submit(c, domain.ID(c.Param("id")))
}

func (h *screenHandler[T, F]) submit(c *gin.Context, id domain.ID) {
	ctx := c.Request.Context()
	logger := middleware.GetLoggerFromCtx(ctx)
	screen := h.screen(h.workspace(c))

	var form F
	if err := c.ShouldBind(&form); err != nil {
		logger.Warn("Failed to bind screen form", slog.String("screen", h.path), slog.String("error", err.Error()))
		h.render(c, http.StatusBadRequest, h.template, h.path, h.view(screen))
		return
	}

	err := screen.Load(ctx)
	if h.expired(c, err) {
		return
	}
	if err == nil {
		if id.IsZero() {
			screen.OpenCreate()
		} else {
			err = screen.OpenEdit(id)
		}
	}
	if err == nil {
		err = screen.Submit(ctx, form)
		if h.expired(c, err) {
			return
		}
	}
	h.render(c, statusFor(err), h.template, h.path, h.view(screen))
}

func (h *screenHandler[T, F]) remove(c *gin.Context) {
	ctx := c.Request.Context()
	screen := h.screen(h.workspace(c))
	id := domain.ID(c.Param("id"))
	confirmed := c.PostForm("confirm") == "yes"

	err := screen.Load(ctx)
	if h.expired(c, err) {
		return
	}
	if err == nil {
		err = screen.Delete(ctx, id, func(string) bool { return confirmed })
		if h.expired(c, err) {
			return
		}
	}
	h.render(c, statusFor(err), h.template, h.path, h.view(screen))
}

func (h *screenHandler[T, F]) view(screen portssvc.ListScreen[T, F]) ScreenView[T, F] {
	state := screen.State()
	view := ScreenView[T, F]{
		Base:   h.path,
		Action: h.path,
		State:  state,
	}
	if state.Editing != nil {
		if editing, ok := any(*state.Editing).(interface{ GetID() domain.ID }); ok {
			view.Action = h.path + "/" + editing.GetID().String()
		}
	}
	if h.decorate != nil {
		h.decorate(&view)
	}
	return view
}
