package service

import (
	"context"
	"database/sql"
	"fmt"

	"go.uber.org/zap"

	"github.com/getconnects/leadrelay/internal/config"
	"github.com/getconnects/leadrelay/internal/models"
	"github.com/getconnects/leadrelay/internal/repository"
	"github.com/getconnects/leadrelay/internal/sender"
)

type notificationService struct {
	repo         repository.Repository
	sms          sender.SMSSender
	email        sender.EmailSender
	smsBreaker   *CircuitBreaker
	emailBreaker *CircuitBreaker
	logger       *zap.Logger
}

func NewNotificationService(
	cfg *config.Config,
	repo repository.Repository,
	sms sender.SMSSender,
	email sender.EmailSender,
	logger *zap.Logger,
) NotificationService {
	return &notificationService{
		repo:         repo,
		sms:          sms,
		email:        email,
		smsBreaker:   NewCircuitBreaker("sms-sender", &cfg.SMS.CircuitBreaker, logger),
		emailBreaker: NewCircuitBreaker("email-sender", &cfg.Email.CircuitBreaker, logger),
		logger:       logger,
	}
}

// DispatchLeadCreated runs the per-channel notification decision for one
// committed lead. It never fails the caller; the returned warnings are
// soft and suitable for surfacing in interactive contexts. Every attempted
// channel writes exactly one log entry.
func (s *notificationService) DispatchLeadCreated(ctx context.Context, lead *models.Lead) []string {
	if lead == nil || !lead.ClientID.Valid {
		return nil
	}

	client, err := s.repo.Client().GetByID(ctx, lead.ClientID.Int64)
	if err != nil {
		s.logger.Error("Notification processing failed",
			zap.Int64("lead_id", lead.ID),
			zap.Error(err))
		return nil
	}
	if client == nil {
		return nil
	}

	smsEnabled, emailEnabled, template := s.resolveSettings(ctx, lead)

	var warnings []string
	if smsEnabled {
		warnings = append(warnings, s.dispatchSMS(ctx, lead, client, template)...)
	}
	if emailEnabled {
		warnings = append(warnings, s.dispatchEmail(ctx, lead, client, template)...)
	}

	return warnings
}

// resolveSettings resolves channel flags and the template for a lead. No
// setting row for the (client, lead type) pair means both channels default
// on; an explicit row carries its flags as stored, including explicit false.
func (s *notificationService) resolveSettings(ctx context.Context, lead *models.Lead) (smsEnabled, emailEnabled bool, template *models.NotificationTemplate) {
	smsEnabled, emailEnabled = true, true

	if lead.LeadType != "" {
		setting, err := s.repo.Notification().GetSetting(ctx, lead.ClientID.Int64, lead.LeadType)
		if err != nil {
			s.logger.Error("Failed to look up notification setting",
				zap.Int64("lead_id", lead.ID),
				zap.Error(err))
			setting = nil
		}

		// The lead type may carry the display name instead of the id when it
		// came from an interactive form; retry the lookup through the name.
		if setting == nil {
			leadType, err := s.repo.Notification().GetLeadTypeByName(ctx, lead.LeadType)
			if err != nil {
				s.logger.Error("Failed to resolve lead type by name",
					zap.Int64("lead_id", lead.ID),
					zap.Error(err))
			} else if leadType != nil {
				setting, err = s.repo.Notification().GetSetting(ctx, lead.ClientID.Int64, leadType.ID)
				if err != nil {
					s.logger.Error("Failed to look up notification setting",
						zap.Int64("lead_id", lead.ID),
						zap.Error(err))
					setting = nil
				}
			}
		}

		if setting != nil {
			smsEnabled = setting.SMSEnabled
			emailEnabled = setting.EmailEnabled
			if setting.TemplateID.Valid {
				template, err = s.repo.Notification().GetTemplate(ctx, setting.TemplateID.Int64)
				if err != nil {
					s.logger.Error("Failed to load notification template",
						zap.Int64("template_id", setting.TemplateID.Int64),
						zap.Error(err))
					template = nil
				}
			}
		}
	}

	if template == nil {
		var err error
		template, err = s.repo.Notification().GetDefaultTemplate(ctx)
		if err != nil {
			s.logger.Error("Failed to load default template", zap.Error(err))
			template = nil
		}
	}

	return smsEnabled, emailEnabled, template
}

func (s *notificationService) dispatchSMS(ctx context.Context, lead *models.Lead, client *models.Client, template *models.NotificationTemplate) []string {
	if client.Phone == "" {
		warnMsg := "Client phone missing - SMS not sent"
		s.writeLog(ctx, lead, models.ChannelSMS, models.NotificationStatusSkipped, warnMsg)
		s.logger.Warn(warnMsg, zap.Int64("lead_id", lead.ID))
		return []string{warnMsg}
	}

	var body string
	if template != nil && template.SMSTemplate.Valid && template.SMSTemplate.String != "" {
		body = RenderTemplate(template.SMSTemplate.String, lead, client)
	} else {
		body = fmt.Sprintf("New lead: %s %s", lead.Name, lead.Phone)
	}

	var accepted bool
	err := s.smsBreaker.Execute(ctx, func() error {
		var sendErr error
		accepted, sendErr = s.sms.Send(ctx, client.Phone, body)
		return sendErr
	})

	if err != nil {
		s.writeLog(ctx, lead, models.ChannelSMS, models.NotificationStatusError, err.Error())
		s.logger.Error("Error sending SMS notification",
			zap.Int64("lead_id", lead.ID),
			zap.Error(err))
		return nil
	}

	if !accepted {
		warnMsg := fmt.Sprintf("SMS notification failed for lead %d. Verify dialer credentials. [ERR_SMS_CRED]", lead.ID)
		s.writeLog(ctx, lead, models.ChannelSMS, models.NotificationStatusFailed, warnMsg)
		s.logger.Warn(warnMsg)
		return []string{warnMsg}
	}

	s.writeLog(ctx, lead, models.ChannelSMS, models.NotificationStatusSent, body)
	s.logger.Info("SMS notification sent", zap.Int64("lead_id", lead.ID))
	return nil
}

func (s *notificationService) dispatchEmail(ctx context.Context, lead *models.Lead, client *models.Client, template *models.NotificationTemplate) []string {
	if client.ContactEmail == "" {
		warnMsg := "Client email missing - email not sent"
		s.writeLog(ctx, lead, models.ChannelEmail, models.NotificationStatusSkipped, warnMsg)
		s.logger.Warn(warnMsg, zap.Int64("lead_id", lead.ID))
		return []string{warnMsg}
	}

	var subject string
	if template != nil && template.EmailSubject.Valid && template.EmailSubject.String != "" {
		subject = RenderTemplate(template.EmailSubject.String, lead, client)
	} else {
		subject = fmt.Sprintf("New lead: %s", lead.Name)
	}

	var body, bodyHTML string
	switch {
	case template != nil && template.EmailHTML.Valid && template.EmailHTML.String != "":
		bodyHTML = RenderTemplate(template.EmailHTML.String, lead, client)
		body = stripHTML(bodyHTML)
	case template != nil && template.EmailText.Valid && template.EmailText.String != "":
		body = RenderTemplate(template.EmailText.String, lead, client)
	default:
		body = fmt.Sprintf("Name: %s\nPhone: %s\nEmail: %s", lead.Name, lead.Phone, lead.Email)
	}

	var accepted bool
	err := s.emailBreaker.Execute(ctx, func() error {
		var sendErr error
		accepted, sendErr = s.email.Send(ctx, client.ContactEmail, subject, body, bodyHTML)
		return sendErr
	})

	logged := body
	if bodyHTML != "" {
		logged = bodyHTML
	}

	if err != nil {
		s.writeLog(ctx, lead, models.ChannelEmail, models.NotificationStatusError, err.Error())
		s.logger.Error("Error sending email notification",
			zap.Int64("lead_id", lead.ID),
			zap.Error(err))
		return nil
	}

	if !accepted {
		warnMsg := fmt.Sprintf("Email notification failed for lead %d. Verify SMTP credentials. [ERR_EMAIL_CRED]", lead.ID)
		s.writeLog(ctx, lead, models.ChannelEmail, models.NotificationStatusFailed, warnMsg)
		s.logger.Warn(warnMsg)
		return []string{warnMsg}
	}

	s.writeLog(ctx, lead, models.ChannelEmail, models.NotificationStatusSent, logged)
	s.logger.Info("Email notification sent", zap.Int64("lead_id", lead.ID))
	return nil
}

// ListLogs returns a page of notification log entries, newest first, with the
// total entry count for pagination.
func (s *notificationService) ListLogs(ctx context.Context, limit, offset int) ([]*models.NotificationLog, int64, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	logs, err := s.repo.Notification().ListLogs(ctx, offset, limit)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.repo.Notification().CountLogs(ctx)
	if err != nil {
		return nil, 0, err
	}

	return logs, total, nil
}

func (s *notificationService) writeLog(ctx context.Context, lead *models.Lead, channel models.NotificationChannel, status models.NotificationStatus, message string) {
	entry := &models.NotificationLog{
		ClientID: lead.ClientID,
		LeadID:   sql.NullInt64{Int64: lead.ID, Valid: true},
		Channel:  channel,
		Status:   status,
		Message:  message,
	}

	if err := s.repo.Notification().CreateLog(ctx, entry); err != nil {
		s.logger.Error("Failed to write notification log",
			zap.Int64("lead_id", lead.ID),
			zap.String("channel", string(channel)),
			zap.Error(err))
	}
}
