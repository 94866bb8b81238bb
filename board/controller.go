package board

import (
	"context"
	"sync"
	"time"

	"github.com/unicsmcr/activity_board/config"
	"github.com/unicsmcr/activity_board/entities"
	"github.com/unicsmcr/activity_board/services"
	"github.com/unicsmcr/activity_board/utils"
	"go.uber.org/zap"
)

const (
	// MutationRejectedText is shown when the API rejects a request without a detail
	MutationRejectedText = "An error occurred"
	// SignupFailedText is shown when a signup request could not be completed
	SignupFailedText = "Failed to sign up. Please try again."
	// RemovalFailedText is shown when an unregister request could not be completed
	RemovalFailedText = "Failed to remove participant. Please try again."
)

// SignupSubmission holds the signup form values read at submit time
type SignupSubmission struct {
	Email    string
	Activity string
}

// RemovalRequest holds the data attached to a participant's removal control
type RemovalRequest struct {
	Activity entities.ActivityName
	Email    string
}

// Controller is the activity board of a single page.
// Every handler may run concurrently with the others; each view update is atomic and
// the last update to land wins.
type Controller struct {
	logger       *zap.Logger
	cfg          *config.AppConfig
	activities   services.ActivityService
	timeProvider utils.TimeProvider

	// ctx bounds the work scheduled by timers, it is cancelled by Close
	ctx    context.Context
	cancel context.CancelFunc

	mu          sync.Mutex
	view        View
	subscribers *subscribers
}

// NewController creates a Controller showing the loading placeholder and a hidden message
func NewController(logger *zap.Logger, cfg *config.AppConfig, activities services.ActivityService, timeProvider utils.TimeProvider) *Controller {
	ctx, cancel := context.WithCancel(context.Background())
	return &Controller{
		logger:       logger,
		cfg:          cfg,
		activities:   activities,
		timeProvider: timeProvider,
		ctx:          ctx,
		cancel:       cancel,
		view: View{
			ListHTML:        LoadingHTML,
			Options:         []Option{},
			RemovalControls: []RemovalControl{},
		},
		subscribers: newSubscribers(),
	}
}

// View returns a snapshot of the current view
func (c *Controller) View() View {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.view.clone()
}

// Subscribe returns a channel receiving the current view and then every view change.
// Intermediate snapshots are dropped for slow readers. The returned func stops the subscription.
func (c *Controller) Subscribe() (<-chan View, func()) {
	c.mu.Lock()
	ch := c.subscribers.add(c.view.clone())
	c.mu.Unlock()

	return ch, func() {
		c.subscribers.remove(ch)
	}
}

// Close stops pending timer work and ends all subscriptions
func (c *Controller) Close() {
	c.cancel()
	c.subscribers.closeAll()
}

// LoadAndRenderActivities fetches the catalog and rebuilds the list and the select options from it.
// On failure the list shows FetchFailureHTML and the select is left untouched.
func (c *Controller) LoadAndRenderActivities(ctx context.Context) {
	catalog, err := c.activities.GetActivities(ctx)
	if err != nil {
		c.logger.Error("could not fetch activities", zap.Error(err))
		c.showFetchFailure()
		return
	}

	rendered, err := Render(catalog)
	if err != nil {
		c.logger.Error("could not render activities", zap.Error(err))
		c.showFetchFailure()
		return
	}

	c.update(func(v *View) {
		v.ListHTML = rendered.ListHTML
		v.Options = rendered.Options
		v.RemovalControls = rendered.RemovalControls
	})
	c.logger.Debug("rendered activities", zap.Any("activities", catalog.Names()))
}

// HandleSignupSubmit signs the submitted email up for the submitted activity.
//
// On success the form is reset and, after the success delay, the message is hidden and the
// activities reloaded. A rejection keeps the form and hides the message after the signup error
// delay. A failed request leaves its message visible.
func (c *Controller) HandleSignupSubmit(ctx context.Context, submission SignupSubmission) {
	c.update(func(v *View) {
		v.Form = FormState{Email: submission.Email, Activity: submission.Activity}
	})

	result, err := c.activities.SignUp(ctx, entities.ActivityName(submission.Activity), submission.Email)
	if err != nil {
		c.logger.Error("could not sign up", zap.String("activity", submission.Activity), zap.Error(err))
		c.showMessage(SignupFailedText, MessageError)
		return
	}

	if result.OK {
		c.update(func(v *View) {
			v.Message = StatusMessage{Text: result.Message, Class: MessageSuccess, Visible: true}
			v.Form = FormState{}
		})
		c.hideMessageAfter(c.cfg.Board.SuccessHideDelay, true)
		return
	}

	c.showMessage(rejectionText(result), MessageError)
	c.hideMessageAfter(c.cfg.Board.SignupErrorHideDelay, false)
}

// HandleDeleteParticipant removes a participant once confirmer agrees.
//
// On success the message is hidden and the activities reloaded after the success delay.
// Rejections and failed requests leave their message visible and do not reload.
func (c *Controller) HandleDeleteParticipant(ctx context.Context, removal RemovalRequest, confirmer Confirmer) {
	if !confirmer.Confirm(ctx, ConfirmPrompt(removal.Activity, removal.Email)) {
		return
	}

	result, err := c.activities.Unregister(ctx, removal.Activity, removal.Email)
	if err != nil {
		c.logger.Error("could not remove participant", zap.String("activity", string(removal.Activity)), zap.Error(err))
		c.showMessage(RemovalFailedText, MessageError)
		return
	}

	if result.OK {
		c.showMessage(result.Message, MessageSuccess)
		c.hideMessageAfter(c.cfg.Board.SuccessHideDelay, true)
		return
	}

	c.showMessage(rejectionText(result), MessageError)
}

func rejectionText(result *services.MutationResult) string {
	if result.Detail != "" {
		return result.Detail
	}
	return MutationRejectedText
}

func (c *Controller) showFetchFailure() {
	c.update(func(v *View) {
		v.ListHTML = FetchFailureHTML
		v.RemovalControls = []RemovalControl{}
	})
}

func (c *Controller) showMessage(text string, class MessageClass) {
	c.update(func(v *View) {
		v.Message = StatusMessage{Text: text, Class: class, Visible: true}
	})
}

// hideMessageAfter hides whatever message is visible once delay elapsed. Timers are never
// cancelled: a message shown after this call can be hidden early by it.
func (c *Controller) hideMessageAfter(delay time.Duration, reload bool) {
	c.timeProvider.AfterFunc(delay, func() {
		if c.ctx.Err() != nil {
			return
		}
		c.update(func(v *View) {
			v.Message.Visible = false
		})
		if reload {
			c.LoadAndRenderActivities(c.ctx)
		}
	})
}

func (c *Controller) update(mutate func(*View)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	mutate(&c.view)
	c.subscribers.publish(c.view)
}
