package cli

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/vaultdesk/vaultdesk/internal/client/mapper"
	"github.com/vaultdesk/vaultdesk/internal/client/models"
	"github.com/vaultdesk/vaultdesk/internal/client/vault"
	"github.com/vaultdesk/vaultdesk/internal/totp"
)

const (
	draftFormDataCard = "datacard"
	draftFormBankCard = "bankcard"
)

// resumeDraft offers a previously saved unsent form. When accepted, it is
// decoded into out and the draft is consumed.
func (a *App) resumeDraft(ctx context.Context, profileID, form string, out any) bool {
	payload, ok, err := a.prefs.Draft(ctx, profileID, form)
	if err != nil || !ok {
		return false
	}

	answer, err := GetSimpleText(a.reader, "An unsent draft exists. Resume it? (y/n)", os.Stdout)
	if err != nil || answer != "y" {
		return false
	}
	if err := json.Unmarshal(payload, out); err != nil {
		a.log.Warn(ctx, "draft decode failed", "form", form, "error", err)
		return false
	}
	_ = a.prefs.DeleteDraft(ctx, profileID, form)
	return true
}

// saveDraft keeps a failed form submission for the next attempt.
func (a *App) saveDraft(ctx context.Context, profileID, form string, in any) {
	payload, err := json.Marshal(in)
	if err != nil {
		return
	}
	if err := a.prefs.SaveDraft(ctx, profileID, form, payload); err != nil {
		a.log.Warn(ctx, "draft save failed", "form", form, "error", err)
		return
	}
	printlnFn("Your input was kept as a draft; 'add' again to resume.")
}

// targetID resolves the card a command operates on: the first argument when
// given, the current selection otherwise.
func (a *App) targetID(s *vault.Session, args []string) (string, bool) {
	if len(args) > 0 {
		return args[0], true
	}

	var id string
	if a.currentKind() == KindBank {
		id = s.BankCards().SelectedID()
	} else {
		id = s.DataCards().SelectedID()
	}
	if id == "" {
		printlnFn("No card selected. Pass an id or 'show' one first.")
		return "", false
	}
	return id, true
}

// List prints the currently visible cards of the active kind.
func (a *App) List(ctx context.Context) error {
	s, err := a.vaultSession()
	if err != nil {
		return err
	}

	if a.currentKind() == KindBank {
		cards := s.BankCards().VisibleCards()
		printlnFn(renderHeading(s.BankCards().SectionTitle(), len(cards)))
		for _, c := range cards {
			printlnFn(renderBankCardRow(c))
		}
		return nil
	}

	cards := s.DataCards().VisibleCards()
	printlnFn(renderHeading(s.DataCards().SectionTitle(), len(cards)))
	for _, c := range cards {
		printlnFn(renderDataCardRow(c))
	}
	return nil
}

// Counts prints the sidebar totals for the active kind.
func (a *App) Counts(ctx context.Context) error {
	s, err := a.vaultSession()
	if err != nil {
		return err
	}

	counts := s.DataCards().Counts()
	if a.currentKind() == KindBank {
		counts = s.BankCards().Counts()
	}
	printlnFn(renderCounts(counts, s.Folders()))
	return nil
}

// Nav switches the list to a bucket: all, fav, archive, trash or folder <id>.
func (a *App) Nav(ctx context.Context, args []string) error {
	s, err := a.vaultSession()
	if err != nil {
		return err
	}
	if len(args) == 0 {
		printlnFn("Usage: nav <all|fav|archive|trash|folder <id>>")
		return nil
	}

	var nav models.Nav
	switch args[0] {
	case "all":
		nav = models.NavAll
	case "fav", "favorites":
		nav = models.Nav{Bucket: models.BucketFavorites}
	case "archive":
		nav = models.Nav{Bucket: models.BucketArchive}
	case "trash", "deleted":
		nav = models.Nav{Bucket: models.BucketDeleted}
	case "folder":
		if len(args) < 2 {
			printlnFn("Usage: nav folder <id>")
			return nil
		}
		nav = models.NavFolder(args[1])
	default:
		printlnFn("Unknown bucket:", args[0])
		return nil
	}

	if a.currentKind() == KindBank {
		err = s.BankCards().SelectNav(ctx, nav)
	} else {
		err = s.DataCards().SelectNav(ctx, nav)
	}
	if err != nil {
		return err
	}
	return a.List(ctx)
}

// Search sets the text query; no arguments clears it.
func (a *App) Search(ctx context.Context, args []string) error {
	s, err := a.vaultSession()
	if err != nil {
		return err
	}

	query := ""
	if len(args) > 0 {
		query = args[0]
		for _, part := range args[1:] {
			query += " " + part
		}
	}

	if a.currentKind() == KindBank {
		s.BankCards().SetSearchQuery(query)
	} else {
		s.DataCards().SetSearchQuery(query)
	}
	return a.List(ctx)
}

// Filter toggles a structural filter: attach, otp, notes, or off to clear.
func (a *App) Filter(ctx context.Context, args []string) error {
	s, err := a.vaultSession()
	if err != nil {
		return err
	}
	if len(args) == 0 {
		printlnFn("Usage: filter <attach|otp|notes|off>")
		return nil
	}

	cards := s.DataCards()
	f := cards.Filters()
	if a.currentKind() == KindBank {
		bf := s.BankCards().Filters()
		switch args[0] {
		case "notes":
			bf.HasNotes = !bf.HasNotes
		case "off":
			bf = models.SearchFilters{}
		default:
			printlnFn("Bank cards support only the notes filter.")
			return nil
		}
		s.BankCards().SetFilters(bf)
		return a.List(ctx)
	}

	switch args[0] {
	case "attach":
		f.HasAttachments = !f.HasAttachments
	case "otp":
		f.HasOTP = !f.HasOTP
	case "notes":
		f.HasNotes = !f.HasNotes
	case "off":
		f = models.SearchFilters{}
	default:
		printlnFn("Unknown filter:", args[0])
		return nil
	}
	cards.SetFilters(f)
	return a.List(ctx)
}

// Sort sets the list ordering: sort <title|created|updated> <asc|desc>.
func (a *App) Sort(ctx context.Context, args []string) error {
	s, err := a.vaultSession()
	if err != nil {
		return err
	}
	if len(args) < 2 {
		printlnFn("Usage: sort <title|created|updated> <asc|desc>")
		return nil
	}

	var field models.SortField
	switch args[0] {
	case "title":
		field = models.SortByTitle
	case "created":
		field = models.SortByCreatedAt
	case "updated":
		field = models.SortByUpdatedAt
	default:
		printlnFn("Unknown sort field:", args[0])
		return nil
	}

	var dir models.SortDirection
	switch args[1] {
	case "asc":
		dir = models.SortAsc
	case "desc":
		dir = models.SortDesc
	default:
		printlnFn("Unknown sort direction:", args[1])
		return nil
	}

	spec := models.SortSpec{Field: field, Direction: dir}
	if a.currentKind() == KindBank {
		s.BankCards().SetSort(spec)
	} else {
		s.DataCards().SetSort(spec)
	}
	return a.List(ctx)
}

// Mode switches between the data-card and bank-card lists.
func (a *App) Mode(ctx context.Context, args []string) error {
	if _, err := a.vaultSession(); err != nil {
		return err
	}
	if len(args) == 0 {
		printlnFn("Usage: mode <data|bank>")
		return nil
	}

	switch args[0] {
	case "data":
		a.mu.Lock()
		a.kind = KindData
		a.mu.Unlock()
	case "bank":
		a.mu.Lock()
		a.kind = KindBank
		a.mu.Unlock()
	default:
		printlnFn("Unknown mode:", args[0])
		return nil
	}
	return a.List(ctx)
}

// Add collects data-card fields interactively and creates the card.
func (a *App) Add(ctx context.Context) error {
	s, err := a.vaultSession()
	if err != nil {
		return err
	}

	var in models.DataCardInput
	if !a.resumeDraft(ctx, s.ProfileID(), draftFormDataCard, &in) {
		if in.Title, err = GetSimpleText(a.reader, "Enter title", os.Stdout); err != nil {
			return err
		}
		if in.Username, err = GetSimpleText(a.reader, "Enter username", os.Stdout); err != nil {
			return err
		}
		if in.Password, err = GetSimpleText(a.reader, "Enter password", os.Stdout); err != nil {
			return err
		}
		if in.URL, err = GetSimpleText(a.reader, "Enter URL", os.Stdout); err != nil {
			return err
		}
		if in.Notes, err = GetMultiline(a.reader, "Enter notes (double Enter to finish):", os.Stdout); err != nil {
			return err
		}
		if in.OTPAuthURI, err = GetSimpleText(a.reader, "Enter otpauth:// URI (empty for none)", os.Stdout); err != nil {
			return err
		}
		if in.Tags, err = GetTags(a.reader, os.Stdout); err != nil {
			return err
		}
	}

	card, err := s.DataCards().CreateCard(ctx, in)
	if err != nil {
		a.saveDraft(ctx, s.ProfileID(), draftFormDataCard, in)
		return err
	}
	printlnFn("Created:", card.Title, idStyle.Render(card.ID))
	return nil
}

// AddBank collects bank-card fields interactively and creates the card.
func (a *App) AddBank(ctx context.Context) error {
	s, err := a.vaultSession()
	if err != nil {
		return err
	}

	var in models.BankCardInput
	if !a.resumeDraft(ctx, s.ProfileID(), draftFormBankCard, &in) {
		if in.Title, err = GetSimpleText(a.reader, "Enter title", os.Stdout); err != nil {
			return err
		}
		if in.CardholderName, err = GetSimpleText(a.reader, "Enter cardholder name", os.Stdout); err != nil {
			return err
		}
		if in.Number, err = GetSimpleText(a.reader, "Enter card number", os.Stdout); err != nil {
			return err
		}
		if in.Expiry, err = GetSimpleText(a.reader, "Enter expiry (MM/YY)", os.Stdout); err != nil {
			return err
		}
		if in.CVC, err = GetSimpleText(a.reader, "Enter security code", os.Stdout); err != nil {
			return err
		}
		if in.PIN, err = GetSimpleText(a.reader, "Enter PIN (empty for none)", os.Stdout); err != nil {
			return err
		}
		if in.BankName, err = GetSimpleText(a.reader, "Enter bank name", os.Stdout); err != nil {
			return err
		}
		if in.Notes, err = GetMultiline(a.reader, "Enter notes (double Enter to finish):", os.Stdout); err != nil {
			return err
		}
	}

	card, err := s.BankCards().CreateCard(ctx, in)
	if err != nil {
		a.saveDraft(ctx, s.ProfileID(), draftFormBankCard, in)
		return err
	}
	printlnFn("Created:", card.Title, idStyle.Render(card.ID))
	return nil
}

// Show selects a card and prints its full record.
func (a *App) Show(ctx context.Context, args []string) error {
	s, err := a.vaultSession()
	if err != nil {
		return err
	}
	id, ok := a.targetID(s, args)
	if !ok {
		return nil
	}

	if a.currentKind() == KindBank {
		if err := s.BankCards().SelectCard(ctx, id); err != nil {
			return err
		}
		if card, ok := s.BankCards().Selected(); ok {
			printlnFn(renderBankCard(card))
		}
		return nil
	}

	if err := s.DataCards().SelectCard(ctx, id); err != nil {
		return err
	}
	if card, ok := s.DataCards().Selected(); ok {
		printlnFn(renderDataCard(card))
	}
	return nil
}

// editField prompts for a replacement value; an empty answer keeps current.
func (a *App) editField(prompt, current string) (string, error) {
	value, err := GetSimpleText(a.reader, prompt+" ["+current+"] (empty keeps current)", os.Stdout)
	if err != nil {
		return "", err
	}
	if value == "" {
		return current, nil
	}
	return value, nil
}

// Edit updates a card field by field; empty answers keep current values.
func (a *App) Edit(ctx context.Context, args []string) error {
	s, err := a.vaultSession()
	if err != nil {
		return err
	}
	id, ok := a.targetID(s, args)
	if !ok {
		return nil
	}

	if a.currentKind() == KindBank {
		return a.editBankCard(ctx, s, id)
	}
	return a.editDataCard(ctx, s, id)
}

func (a *App) editDataCard(ctx context.Context, s *vault.Session, id string) error {
	if err := s.DataCards().SelectCard(ctx, id); err != nil {
		return err
	}
	card, ok := s.DataCards().Selected()
	if !ok {
		printlnFn("Card not found:", id)
		return nil
	}

	in := mapper.DataCardToInput(card)

	var err error
	if in.Title, err = a.editField("Title", in.Title); err != nil {
		return err
	}
	if in.Username, err = a.editField("Username", in.Username); err != nil {
		return err
	}
	if in.Password, err = a.editField("Password", "••••••••"); err != nil {
		return err
	}
	if in.Password == "••••••••" {
		in.Password = card.Password
	}
	if in.URL, err = a.editField("URL", in.URL); err != nil {
		return err
	}

	updated, err := s.DataCards().UpdateCard(ctx, id, in)
	if err != nil {
		return err
	}
	printlnFn("Updated:", updated.Title)
	return nil
}

func (a *App) editBankCard(ctx context.Context, s *vault.Session, id string) error {
	if err := s.BankCards().SelectCard(ctx, id); err != nil {
		return err
	}
	card, ok := s.BankCards().Selected()
	if !ok {
		printlnFn("Card not found:", id)
		return nil
	}

	in := mapper.BankCardToInput(card)

	var err error
	if in.Title, err = a.editField("Title", in.Title); err != nil {
		return err
	}
	if in.CardholderName, err = a.editField("Cardholder", in.CardholderName); err != nil {
		return err
	}
	if in.Expiry, err = a.editField("Expiry", in.Expiry); err != nil {
		return err
	}
	if in.BankName, err = a.editField("Bank", in.BankName); err != nil {
		return err
	}

	updated, err := s.BankCards().UpdateCard(ctx, id, in)
	if err != nil {
		return err
	}
	printlnFn("Updated:", updated.Title)
	return nil
}

// Delete removes a card (to trash when soft delete is on).
func (a *App) Delete(ctx context.Context, args []string) error {
	s, err := a.vaultSession()
	if err != nil {
		return err
	}
	id, ok := a.targetID(s, args)
	if !ok {
		return nil
	}

	if a.currentKind() == KindBank {
		err = s.BankCards().DeleteCard(ctx, id)
	} else {
		err = s.DataCards().DeleteCard(ctx, id)
	}
	if err != nil {
		return err
	}
	printlnFn("Deleted:", id)
	return nil
}

// Restore moves a soft-deleted card back to the active list.
func (a *App) Restore(ctx context.Context, args []string) error {
	s, err := a.vaultSession()
	if err != nil {
		return err
	}
	id, ok := a.targetID(s, args)
	if !ok {
		return nil
	}

	if a.currentKind() == KindBank {
		err = s.BankCards().RestoreCard(ctx, id)
	} else {
		err = s.DataCards().RestoreCard(ctx, id)
	}
	if err != nil {
		return err
	}
	printlnFn("Restored:", id)
	return nil
}

// Purge permanently removes a soft-deleted card.
func (a *App) Purge(ctx context.Context, args []string) error {
	s, err := a.vaultSession()
	if err != nil {
		return err
	}
	id, ok := a.targetID(s, args)
	if !ok {
		return nil
	}

	if a.currentKind() == KindBank {
		err = s.BankCards().PurgeCard(ctx, id)
	} else {
		err = s.DataCards().PurgeCard(ctx, id)
	}
	if err != nil {
		return err
	}
	printlnFn("Purged:", id)
	return nil
}

// RestoreAll restores everything in the trash of the active kind.
func (a *App) RestoreAll(ctx context.Context) error {
	s, err := a.vaultSession()
	if err != nil {
		return err
	}
	if a.currentKind() == KindBank {
		return s.BankCards().RestoreAllTrash(ctx)
	}
	return s.DataCards().RestoreAllTrash(ctx)
}

// PurgeAll empties the trash of the active kind.
func (a *App) PurgeAll(ctx context.Context) error {
	s, err := a.vaultSession()
	if err != nil {
		return err
	}
	if a.currentKind() == KindBank {
		return s.BankCards().PurgeAllTrash(ctx)
	}
	return s.DataCards().PurgeAllTrash(ctx)
}

// Favorite toggles the favorite star of a card.
func (a *App) Favorite(ctx context.Context, args []string) error {
	s, err := a.vaultSession()
	if err != nil {
		return err
	}
	id, ok := a.targetID(s, args)
	if !ok {
		return nil
	}

	if a.currentKind() == KindBank {
		return s.BankCards().ToggleFavorite(ctx, id)
	}
	return s.DataCards().ToggleFavorite(ctx, id)
}

// Move assigns a card to a folder; no folder argument means unfiled.
func (a *App) Move(ctx context.Context, args []string) error {
	s, err := a.vaultSession()
	if err != nil {
		return err
	}
	id, ok := a.targetID(s, args)
	if !ok {
		return nil
	}

	var folderID *string
	if len(args) > 1 {
		folderID = &args[1]
	}

	if a.currentKind() == KindBank {
		return s.BankCards().MoveCardToFolder(ctx, id, folderID)
	}
	return s.DataCards().MoveCardToFolder(ctx, id, folderID)
}

// Copy puts a single card field on the clipboard; it auto-clears after the
// configured delay.
func (a *App) Copy(ctx context.Context, args []string) error {
	s, err := a.vaultSession()
	if err != nil {
		return err
	}
	if len(args) < 2 {
		printlnFn("Usage: copy <id> <field>")
		return nil
	}
	id, field := args[0], args[1]

	var value string
	if a.currentKind() == KindBank {
		if err := s.BankCards().SelectCard(ctx, id); err != nil {
			return err
		}
		card, ok := s.BankCards().Selected()
		if !ok {
			printlnFn("Card not found:", id)
			return nil
		}
		switch field {
		case "number":
			value = card.Number
		case "cvc":
			value = card.CVC
		case "pin":
			value = card.PIN
		default:
			printlnFn("Unknown field:", field)
			return nil
		}
	} else {
		if err := s.DataCards().SelectCard(ctx, id); err != nil {
			return err
		}
		card, ok := s.DataCards().Selected()
		if !ok {
			printlnFn("Card not found:", id)
			return nil
		}
		switch field {
		case "username":
			value = card.Username
		case "password":
			value = card.Password
		case "url":
			value = card.URL
		case "notes":
			value = card.Notes
		default:
			printlnFn("Unknown field:", field)
			return nil
		}
	}

	delay := s.Settings().ClipboardClearDelay
	if err := a.clip.Copy(ctx, value, delay); err != nil {
		return err
	}
	printlnFn("Copied", field, "to clipboard; clears in", delay.String())
	return nil
}

// Totp prints the current one-time code of a data card and copies it.
func (a *App) Totp(ctx context.Context, args []string) error {
	s, err := a.vaultSession()
	if err != nil {
		return err
	}
	id, ok := a.targetID(s, args)
	if !ok {
		return nil
	}

	if err := s.DataCards().SelectCard(ctx, id); err != nil {
		return err
	}
	card, found := s.DataCards().Selected()
	if !found {
		printlnFn("Card not found:", id)
		return nil
	}
	if card.OTPAuthURI == "" {
		printlnFn("Card has no one-time code configured.")
		return nil
	}

	code, err := totp.Generate(card.OTPAuthURI, time.Now())
	if err != nil {
		printlnFn("Could not generate code:", err.Error())
		return err
	}

	if err := a.clip.Copy(ctx, code.Value, s.Settings().ClipboardClearDelay); err != nil {
		return err
	}
	printlnFn(headingStyle.Render(code.Value), metaStyle.Render("expires in "+code.ExpiresIn.String()))
	return nil
}

// Attach uploads a local file to a data card.
func (a *App) Attach(ctx context.Context, args []string) error {
	s, err := a.vaultSession()
	if err != nil {
		return err
	}
	if len(args) < 2 {
		printlnFn("Usage: attach <id> <path>")
		return nil
	}
	id, path := args[0], args[1]

	content, err := os.ReadFile(path)
	if err != nil {
		printlnFn("Could not read file:", err.Error())
		return err
	}

	att, err := s.DataCards().AddAttachment(ctx, id, filepath.Base(path), content)
	if err != nil {
		return err
	}
	printlnFn("Attached:", att.FileName, idStyle.Render(att.ID))
	return nil
}

// SaveAttachment downloads attachment content to a local file.
func (a *App) SaveAttachment(ctx context.Context, args []string) error {
	s, err := a.vaultSession()
	if err != nil {
		return err
	}
	if len(args) < 3 {
		printlnFn("Usage: saveattach <id> <attachment-id> <path>")
		return nil
	}
	id, attID, path := args[0], args[1], args[2]

	content, err := s.DataCards().Attachment(ctx, id, attID)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, content, 0o600); err != nil {
		printlnFn("Could not write file:", err.Error())
		return err
	}
	printlnFn("Saved to:", path)
	return nil
}

// RemoveAttachment deletes an attachment from a data card.
func (a *App) RemoveAttachment(ctx context.Context, args []string) error {
	s, err := a.vaultSession()
	if err != nil {
		return err
	}
	if len(args) < 2 {
		printlnFn("Usage: rmattach <id> <attachment-id>")
		return nil
	}
	return s.DataCards().DeleteAttachment(ctx, args[0], args[1])
}
