package email

import (
	"context"
	"errors"
	"testing"

	"github.com/resend/resend-go/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSender struct {
	sent []*resend.SendEmailRequest
	err  error
}

func (f *fakeSender) SendWithContext(_ context.Context, params *resend.SendEmailRequest) (*resend.SendEmailResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.sent = append(f.sent, params)
	return &resend.SendEmailResponse{Id: "email_123"}, nil
}

func newTestClient(s sender) *Client {
	logger := zerolog.Nop()
	return &Client{emails: s, from: "RecipeBox <hello@recipebox.test>", logger: &logger}
}

func TestRender_Welcome(t *testing.T) {
	html, err := Render(TemplateWelcome, map[string]string{"Username": "<b>ana</b>"})
	require.NoError(t, err)

	assert.Contains(t, html, "Welcome, &lt;b&gt;ana&lt;/b&gt;!")
}

func TestRender_UnknownTemplate(t *testing.T) {
	_, err := Render(Template("missing"), nil)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Validate())
}

func TestSendWelcomeEmail(t *testing.T) {
	fake := &fakeSender{}
	client := newTestClient(fake)

	require.NoError(t, client.SendWelcomeEmail(context.Background(), "ana@example.com", "ana"))

	require.Len(t, fake.sent, 1)
	req := fake.sent[0]
	assert.Equal(t, "RecipeBox <hello@recipebox.test>", req.From)
	assert.Equal(t, []string{"ana@example.com"}, req.To)
	assert.Equal(t, "Welcome to RecipeBox!", req.Subject)
	assert.Contains(t, req.Html, "Welcome, ana!")
}

func TestSendWelcomeEmail_ProviderError(t *testing.T) {
	client := newTestClient(&fakeSender{err: errors.New("rate limited")})

	err := client.SendWelcomeEmail(context.Background(), "ana@example.com", "ana")
	assert.ErrorContains(t, err, "rate limited")
}
