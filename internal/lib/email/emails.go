package email

import "context"

// SendWelcomeEmail greets a newly registered user.
func (c *Client) SendWelcomeEmail(ctx context.Context, to, username string) error {
	data := map[string]string{
		"Username": username,
	}

	return c.SendEmail(ctx, to, "Welcome to RecipeBox!", TemplateWelcome, data)
}
