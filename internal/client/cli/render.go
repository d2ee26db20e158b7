package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vaultdesk/vaultdesk/internal/client/models"
	"github.com/vaultdesk/vaultdesk/internal/client/vault"
)

var (
	headingStyle = lipgloss.NewStyle().Bold(true)
	idStyle      = lipgloss.NewStyle().Faint(true)
	metaStyle    = lipgloss.NewStyle().Faint(true)
	starStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	noticeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	labelStyle   = lipgloss.NewStyle().Width(14).Faint(true)
)

func renderNotice(n vault.Notice) string {
	return noticeStyle.Render(n.Message)
}

func renderHeading(title string, count int) string {
	return headingStyle.Render(fmt.Sprintf("%s (%d)", title, count))
}

// renderDataCardRow formats one list line: star, title, badges, meta, id.
func renderDataCardRow(c models.DataCardSummary) string {
	star := "  "
	if c.IsFavorite {
		star = starStyle.Render("★ ")
	}

	var badges []string
	if c.HasAttachments {
		badges = append(badges, "📎")
	}
	if c.HasOTP {
		badges = append(badges, "⏱")
	}
	if c.HasNotes {
		badges = append(badges, "📝")
	}

	line := star + c.Title
	if len(badges) > 0 {
		line += " " + strings.Join(badges, "")
	}
	if c.Meta != "" {
		line += "  " + metaStyle.Render(c.Meta)
	}
	if c.UpdatedLabel != "" {
		line += "  " + metaStyle.Render(c.UpdatedLabel)
	}
	return line + "  " + idStyle.Render(c.ID)
}

func renderBankCardRow(c models.BankCardSummary) string {
	star := "  "
	if c.IsFavorite {
		star = starStyle.Render("★ ")
	}

	line := star + c.Title
	if c.MaskedNumber != "" {
		line += "  " + c.MaskedNumber
	}
	if c.Meta != "" {
		line += "  " + metaStyle.Render(c.Meta)
	}
	return line + "  " + idStyle.Render(c.ID)
}

func renderField(name, value string) string {
	if value == "" {
		return ""
	}
	return labelStyle.Render(name) + " " + value
}

// renderDataCard formats the full detail view. The password is always
// masked; copy or totp put real values on the clipboard instead.
func renderDataCard(c models.DataCard) string {
	var b strings.Builder
	b.WriteString(headingStyle.Render(c.Title) + "\n")
	for _, line := range []string{
		renderField("Username", c.Username),
		renderField("Password", strings.Repeat("•", 8)),
		renderField("URL", c.URL),
		renderField("Notes", c.Notes),
		renderField("Tags", strings.Join(c.Tags, ", ")),
	} {
		if line != "" {
			b.WriteString(line + "\n")
		}
	}
	if c.OTPAuthURI != "" {
		b.WriteString(renderField("One-time code", "available (use 'totp')") + "\n")
	}
	for _, att := range c.Attachments {
		b.WriteString(renderField("Attachment", fmt.Sprintf("%s (%d bytes) %s", att.FileName, att.Size, idStyle.Render(att.ID))) + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func renderBankCard(c models.BankCard) string {
	var b strings.Builder
	b.WriteString(headingStyle.Render(c.Title) + "\n")
	for _, line := range []string{
		renderField("Cardholder", c.CardholderName),
		renderField("Number", c.Number),
		renderField("Expiry", c.Expiry),
		renderField("CVC", strings.Repeat("•", len(c.CVC))),
		renderField("Bank", c.BankName),
		renderField("Notes", c.Notes),
	} {
		if line != "" {
			b.WriteString(line + "\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

// renderCounts formats the sidebar totals.
func renderCounts(c vault.Counts, folders []models.Folder) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("All: %d  Favorites: %d  Archive: %d  Trash: %d\n", c.All, c.Favorites, c.Archive, c.Deleted))
	for _, f := range folders {
		b.WriteString(fmt.Sprintf("  %s: %d\n", f.Name, c.Folders[f.ID]))
	}
	return strings.TrimRight(b.String(), "\n")
}

// renderFolderTree formats the folder hierarchy with indentation.
func renderFolderTree(nodes []*models.FolderNode) string {
	var b strings.Builder
	var walk func(nodes []*models.FolderNode, depth int)
	walk = func(nodes []*models.FolderNode, depth int) {
		for _, n := range nodes {
			name := n.Name
			if n.IsSystem {
				name += metaStyle.Render(" (system)")
			}
			b.WriteString(strings.Repeat("  ", depth) + name + "  " + idStyle.Render(n.ID) + "\n")
			walk(n.Children, depth+1)
		}
	}
	walk(nodes, 0)
	return strings.TrimRight(b.String(), "\n")
}
