package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/deppfellow/recipebox/internal/lib/email"
)

// newPreviewEmailCmd renders an email template with its preview data. It
// needs no configuration, so it works on a bare checkout.
func newPreviewEmailCmd() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "preview-email",
		Short: "Render an email template to stdout",
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, ok := email.PreviewData[name]
			if !ok {
				return fmt.Errorf("unknown email template %q", name)
			}

			html, err := email.Render(email.Template(name), data)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), html)
			return err
		},
	}

	cmd.Flags().StringVar(&name, "template", string(email.TemplateWelcome), "template name")

	return cmd
}
