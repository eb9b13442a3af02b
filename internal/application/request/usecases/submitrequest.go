package usecases

import (
	"context"
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/corpit/licensedesk/internal/application/request/dto"
	"github.com/corpit/licensedesk/internal/domain/notification"
	"github.com/corpit/licensedesk/internal/domain/request"
	"github.com/corpit/licensedesk/internal/domain/user"
	"github.com/corpit/licensedesk/internal/shared/authorization"
	"github.com/corpit/licensedesk/internal/shared/biztime"
	"github.com/corpit/licensedesk/internal/shared/errors"
	"github.com/corpit/licensedesk/internal/shared/goroutine"
	"github.com/corpit/licensedesk/internal/shared/logger"
	"github.com/corpit/licensedesk/internal/shared/markdown"
)

const adminNotifyTimeout = 30 * time.Second

type SubmitRequestUseCase struct {
	requestRepo request.Repository
	userRepo    user.Repository
	dispatcher  notification.Dispatcher
	renderer    markdown.Renderer
	logger      logger.Interface
}

func NewSubmitRequestUseCase(
	requestRepo request.Repository,
	userRepo user.Repository,
	dispatcher notification.Dispatcher,
	renderer markdown.Renderer,
	logger logger.Interface,
) *SubmitRequestUseCase {
	return &SubmitRequestUseCase{
		requestRepo: requestRepo,
		userRepo:    userRepo,
		dispatcher:  dispatcher,
		renderer:    renderer,
		logger:      logger,
	}
}

// Execute stores the request and emails every admin in the background.
// Email failures are logged and never fail the submission.
func (uc *SubmitRequestUseCase) Execute(ctx context.Context, requesterID uint, req dto.SubmitRequestRequest) (*dto.RequestResponse, error) {
	uc.logger.Infow("executing submit request use case", "requested_by", requesterID, "topic", req.Topic)

	date, err := biztime.ParseDate(req.Date)
	if err != nil {
		return nil, errors.NewValidationError("date must be a date in YYYY-MM-DD format")
	}

	r, err := request.NewRequest(request.Submission{
		Name:        req.Name,
		Date:        date,
		Topic:       req.Topic,
		Description: req.Description,
		Currency:    req.Currency,
		Amount:      req.Amount,
		RequestedBy: requesterID,
	})
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.requestRepo.Create(ctx, r); err != nil {
		uc.logger.Errorw("failed to save request", "error", err)
		return nil, toAppError(err)
	}

	uc.logger.Infow("request submitted successfully", "request_id", r.ID(), "requested_by", requesterID)

	notifyCtx := context.WithoutCancel(ctx)
	goroutine.SafeGo(uc.logger, "request-admin-notify", func() {
		uc.notifyAdmins(notifyCtx, r)
	})

	resp := dto.ToRequestResponse(r)
	return &resp, nil
}

func (uc *SubmitRequestUseCase) notifyAdmins(ctx context.Context, r *request.Request) {
	ctx, cancel := context.WithTimeout(ctx, adminNotifyTimeout)
	defer cancel()

	admins, err := uc.userRepo.ListByRole(ctx, authorization.RoleAdmin)
	if err != nil {
		uc.logger.Errorw("failed to list admins for request notification", "request_id", r.ID(), "error", err)
		return
	}
	if len(admins) == 0 {
		uc.logger.Warnw("no admin to notify about request", "request_id", r.ID())
		return
	}

	requester := fmt.Sprintf("user #%d", r.RequestedBy())
	if u, err := uc.userRepo.GetByID(ctx, r.RequestedBy()); err == nil && u != nil {
		requester = u.Username()
	}

	descriptionHTML, err := uc.renderer.ToHTMLSanitized(r.Description())
	if err != nil {
		uc.logger.Warnw("failed to render request description", "request_id", r.ID(), "error", err)
		descriptionHTML = "<pre>" + html.EscapeString(r.Description()) + "</pre>"
	}

	subject, body := composeRequestEmail(r, requester, descriptionHTML)
	for _, admin := range admins {
		if err := uc.dispatcher.Send(ctx, admin.Email(), subject, body); err != nil {
			uc.logger.Errorw("failed to notify admin about request",
				"request_id", r.ID(),
				"admin_id", admin.ID(),
				"error", err,
			)
			continue
		}
		uc.logger.Infow("admin notified about request", "request_id", r.ID(), "admin_id", admin.ID())
	}
}

func composeRequestEmail(r *request.Request, requester, descriptionHTML string) (string, string) {
	subject := "New request: " + r.Topic()

	var b strings.Builder
	b.WriteString("<html><body>")
	fmt.Fprintf(&b, "<p>%s submitted a new request.</p>", html.EscapeString(requester))
	b.WriteString("<table>")
	fmt.Fprintf(&b, "<tr><td>Name</td><td>%s</td></tr>", html.EscapeString(r.Name()))
	fmt.Fprintf(&b, "<tr><td>Date</td><td>%s</td></tr>", biztime.FormatDate(r.Date()))
	fmt.Fprintf(&b, "<tr><td>Topic</td><td>%s</td></tr>", html.EscapeString(r.Topic()))
	if r.Currency() != "" {
		fmt.Fprintf(&b, "<tr><td>Amount</td><td>%s %s</td></tr>", r.Currency(), r.Amount().StringFixed(2))
	}
	b.WriteString("</table>")
	b.WriteString("<div>")
	b.WriteString(descriptionHTML)
	b.WriteString("</div>")
	b.WriteString("</body></html>")

	return subject, b.String()
}
