package email

// PreviewData holds sample variables per template, used by the
// preview-email command and by Validate.
var PreviewData = map[string]map[string]string{
	string(TemplateWelcome): {
		"Username": "chef_ana",
	},
}
