package gmail

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"
	"unicode/utf8"

	emailsyncdomain "crm-backend/internal/emailsync/domain"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/gmail/v1"
	"google.golang.org/api/option"
)

// Service talks to the Gmail API on behalf of a connected mailbox
type Service struct {
	clientID     string
	clientSecret string
}

func NewService(clientID, clientSecret string) *Service {
	return &Service{
		clientID:     clientID,
		clientSecret: clientSecret,
	}
}

// Refresh exchanges a refresh token for a new access token via Google's
// token endpoint. Called at most once per account per sync run.
func (s *Service) Refresh(ctx context.Context, refreshToken string) (*emailsyncdomain.RefreshedToken, error) {
	config := &oauth2.Config{
		ClientID:     s.clientID,
		ClientSecret: s.clientSecret,
		Endpoint:     google.Endpoint,
	}

	src := config.TokenSource(ctx, &oauth2.Token{RefreshToken: refreshToken})
	token, err := src.Token()
	if err != nil {
		return nil, fmt.Errorf("unable to refresh token: %v", err)
	}

	refreshed := &emailsyncdomain.RefreshedToken{
		AccessToken: token.AccessToken,
		ExpiresAt:   token.Expiry,
	}
	// Google occasionally rotates the refresh token; only report it when it changed
	if token.RefreshToken != "" && token.RefreshToken != refreshToken {
		refreshed.RefreshToken = token.RefreshToken
	}
	return refreshed, nil
}

// gmailClient builds a Gmail API client bound to one access token
func (s *Service) gmailClient(ctx context.Context, accessToken string) (*gmail.Service, error) {
	src := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: accessToken, TokenType: "Bearer"})
	srv, err := gmail.NewService(ctx, option.WithTokenSource(src))
	if err != nil {
		return nil, fmt.Errorf("unable to create Gmail service: %v", err)
	}
	return srv, nil
}

// FetchRecent lists up to max recent message IDs, then fetches metadata for
// each one. Per-message fetch failures are skipped so one inaccessible
// message never blocks the batch.
func (s *Service) FetchRecent(ctx context.Context, accessToken string, max int) ([]*emailsyncdomain.Message, error) {
	srv, err := s.gmailClient(ctx, accessToken)
	if err != nil {
		return nil, err
	}

	user := "me"
	requestLimit := int64(max)
	if requestLimit <= 0 {
		requestLimit = 20
	}
	if requestLimit > 500 {
		requestLimit = 500 // Gmail API maximum
	}

	listResp, err := srv.Users.Messages.List(user).MaxResults(requestLimit).Do()
	if err != nil {
		return nil, fmt.Errorf("unable to retrieve messages: %v", err)
	}

	messages := make([]*emailsyncdomain.Message, 0, len(listResp.Messages))
	for _, m := range listResp.Messages {
		full, err := srv.Users.Messages.Get(user, m.Id).
			Format("metadata").
			MetadataHeaders("Subject", "From", "To", "Date").
			Do()
		if err != nil {
			log.Printf("[Gmail] Skipping message %s: %v", m.Id, err)
			continue
		}
		messages = append(messages, convertMetadata(full))
	}

	return messages, nil
}

func convertMetadata(msg *gmail.Message) *emailsyncdomain.Message {
	var headers []*gmail.MessagePartHeader
	if msg.Payload != nil {
		headers = msg.Payload.Headers
	}

	toHeader := getHeader(headers, "To")
	to := []string{}
	for _, addr := range strings.Split(toHeader, ",") {
		if trimmed := strings.TrimSpace(addr); trimmed != "" {
			to = append(to, trimmed)
		}
	}

	return &emailsyncdomain.Message{
		ProviderID: msg.Id,
		ThreadID:   msg.ThreadId,
		Subject:    getHeader(headers, "Subject"),
		From:       getHeader(headers, "From"),
		To:         to,
		Date:       time.Unix(msg.InternalDate/1000, 0),
		Preview:    normalizePreview(msg.Snippet),
	}
}

func getHeader(headers []*gmail.MessagePartHeader, name string) string {
	for _, header := range headers {
		if header.Name == name {
			return header.Value
		}
	}
	return ""
}

// normalizePreview collapses whitespace and truncates the snippet on a
// rune boundary so non-ASCII snippets stay valid UTF-8
func normalizePreview(snippet string) string {
	preview := strings.Join(strings.Fields(snippet), " ")
	if len(preview) > 200 {
		cut := 200
		for cut > 0 && !utf8.RuneStart(preview[cut]) {
			cut--
		}
		preview = preview[:cut] + "..."
	}
	return preview
}
