package frontend

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/unicsmcr/activity_board/board"
	"github.com/unicsmcr/activity_board/entities"
	"github.com/unicsmcr/activity_board/routers/api/models"
	"go.uber.org/zap"
)

const (
	confirmField = "confirm"
	confirmYes   = "yes"

	viewEvent = "view"
)

func (r *frontendRouter) BoardPage(ctx *gin.Context) {
	sess, ok := r.sessionFromCookie(ctx)
	if !ok {
		var id string
		id, sess = r.sessions.create()
		r.setSessionCookie(ctx, id)

		err := r.dispatchAndWait(ctx, sess, board.Event{
			Source: board.SourcePage,
			Kind:   board.KindLoad,
		})
		if err != nil {
			r.logger.Error("could not load activity board", zap.Error(err))
		}
	}

	ctx.HTML(http.StatusOK, boardTemplate, templateDataModel{
		Cfg:  r.cfg,
		Data: newBoardPageDataModel(sess.controller.View()),
	})
}

func (r *frontendRouter) SignUp(ctx *gin.Context) {
	sess, ok := r.sessionFromCookie(ctx)
	if !ok {
		r.logger.Warn("signup submitted without a board session")
		ctx.Redirect(http.StatusSeeOther, boardPath)
		return
	}

	err := r.dispatchAndWait(ctx, sess, board.Event{
		Source: board.SourceSignupForm,
		Kind:   board.KindSubmit,
		Values: map[string]string{
			board.FieldEmail:    ctx.PostForm(board.FieldEmail),
			board.FieldActivity: ctx.PostForm(board.FieldActivity),
		},
	})
	if err != nil {
		r.logger.Error("could not handle signup", zap.Error(err))
	}

	ctx.Redirect(http.StatusSeeOther, boardPath)
}

func (r *frontendRouter) RemoveParticipant(ctx *gin.Context) {
	sess, ok := r.sessionFromCookie(ctx)
	if !ok {
		r.logger.Warn("participant removal submitted without a board session")
		ctx.Redirect(http.StatusSeeOther, boardPath)
		return
	}

	activity := ctx.PostForm(board.FieldActivity)
	email := ctx.PostForm(board.FieldEmail)

	answer, answered := ctx.GetPostForm(confirmField)
	if !answered {
		ctx.HTML(http.StatusOK, confirmRemovalTemplate, templateDataModel{
			Cfg: r.cfg,
			Data: confirmRemovalPageDataModel{
				Prompt:   board.ConfirmPrompt(entities.ActivityName(activity), email),
				Activity: activity,
				Email:    email,
				Action:   board.RemovalActionPath,
			},
		})
		return
	}

	err := r.dispatchAndWait(ctx, sess, board.Event{
		Source: board.SourceRemovalControl,
		Kind:   board.KindClick,
		Values: map[string]string{
			board.FieldEmail:    email,
			board.FieldActivity: activity,
		},
		Confirmer: board.Answer(answer == confirmYes),
	})
	if errors.Cause(err) == board.ErrUnknownControl {
		r.logger.Warn("removal requested for a participant not on the board",
			zap.String("activity", activity), zap.String("email", email))
	} else if err != nil {
		r.logger.Error("could not handle participant removal", zap.Error(err))
	}

	ctx.Redirect(http.StatusSeeOther, boardPath)
}

func (r *frontendRouter) Events(ctx *gin.Context) {
	sess, ok := r.sessionFromCookie(ctx)
	if !ok {
		models.SendAPIError(ctx, http.StatusNotFound, "board session not found")
		return
	}

	updates, unsubscribe := sess.controller.Subscribe()
	defer unsubscribe()

	ctx.Stream(func(w io.Writer) bool {
		select {
		case view, ok := <-updates:
			if !ok {
				return false
			}
			ctx.SSEvent(viewEvent, newViewEventDataModel(view))
			return true
		case <-ctx.Request.Context().Done():
			return false
		}
	})
}

// sessionFromCookie returns the session of the request and extends its cookie
func (r *frontendRouter) sessionFromCookie(ctx *gin.Context) (*session, bool) {
	id, err := ctx.Cookie(r.cfg.Sessions.CookieName)
	if err != nil {
		return nil, false
	}

	sess, ok := r.sessions.get(id)
	if ok {
		r.setSessionCookie(ctx, id)
	}
	return sess, ok
}

// setSessionCookie makes the browser keep id for as long as the session may stay idle
func (r *frontendRouter) setSessionCookie(ctx *gin.Context, id string) {
	ctx.SetCookie(r.cfg.Sessions.CookieName, id, int(r.cfg.Sessions.IdleTimeout.Seconds()), boardPath, "", false, true)
}

// dispatchAndWait hands event to the session's board and waits for the handler to return,
// so the page rendered after the redirect shows its outcome
func (r *frontendRouter) dispatchAndWait(ctx *gin.Context, sess *session, event board.Event) error {
	task, err := sess.dispatcher.Dispatch(ctx.Request.Context(), event)
	if err != nil {
		return err
	}
	return task.Wait(ctx.Request.Context())
}
