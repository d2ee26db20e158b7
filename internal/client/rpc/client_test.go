package rpc

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeInvoker records every call and replies from a canned JSON payload per
// command.
type fakeInvoker struct {
	commands []string
	args     []any
	replies  map[string]string
	err      error
	lastCtx  context.Context
}

func (f *fakeInvoker) Invoke(ctx context.Context, command string, args, reply any) error {
	f.commands = append(f.commands, command)
	f.args = append(f.args, args)
	f.lastCtx = ctx
	if f.err != nil {
		return f.err
	}
	if payload, ok := f.replies[command]; ok {
		return json.Unmarshal([]byte(payload), reply)
	}
	return nil
}

func (f *fakeInvoker) lastArgsJSON(t *testing.T) string {
	t.Helper()
	require.NotEmpty(t, f.args)
	data, err := json.Marshal(f.args[len(f.args)-1])
	require.NoError(t, err)
	return string(data)
}

func TestPing_IssuesCommandAndCarriesDeadline(t *testing.T) {
	f := &fakeInvoker{}
	c := New(f)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, c.Ping(ctx))

	assert.Equal(t, []string{"ping"}, f.commands)
	_, bounded := f.lastCtx.Deadline()
	assert.True(t, bounded, "startup probe must honor the dial timeout")
}

func TestListDataCardSummaries_CommandAndArgs(t *testing.T) {
	f := &fakeInvoker{replies: map[string]string{
		"list_datacards_summary_command": `[{"id":"c1","title":"Work Email"}]`,
	}}
	c := New(f)

	out, err := c.ListDataCardSummaries(context.Background(), true)
	require.NoError(t, err)

	require.Len(t, out, 1)
	assert.Equal(t, "Work Email", out[0].Title)
	assert.Equal(t, []string{"list_datacards_summary_command"}, f.commands)
	assert.JSONEq(t, `{"deleted":true}`, f.lastArgsJSON(t))
}

func TestUpdateDataCard_FlattensIDIntoInput(t *testing.T) {
	f := &fakeInvoker{}
	c := New(f)

	in := DataCardInput{Title: "Work Email", Username: "alex", Tags: []string{"work"}}
	require.NoError(t, c.UpdateDataCard(context.Background(), "c1", in))

	assert.Equal(t, []string{"update_datacard"}, f.commands)
	assert.JSONEq(t, `{
		"id":"c1","title":"Work Email","username":"alex","password":"","url":"",
		"notes":"","otpauth_uri":"","tags":["work"],"folder_id":null
	}`, f.lastArgsJSON(t))
}

func TestSetDataCardFavorite_Args(t *testing.T) {
	f := &fakeInvoker{}
	c := New(f)

	require.NoError(t, c.SetDataCardFavorite(context.Background(), "c1", true))
	assert.JSONEq(t, `{"id":"c1","favorite":true}`, f.lastArgsJSON(t))
}

func TestMoveDataCardToFolder_NullFolderMeansUnfiled(t *testing.T) {
	f := &fakeInvoker{}
	c := New(f)

	require.NoError(t, c.MoveDataCardToFolder(context.Background(), "c1", nil))
	assert.JSONEq(t, `{"id":"c1","folder_id":null}`, f.lastArgsJSON(t))
}

func TestTrashCommands(t *testing.T) {
	f := &fakeInvoker{}
	c := New(f)
	ctx := context.Background()

	require.NoError(t, c.DeleteDataCard(ctx, "c1"))
	require.NoError(t, c.RestoreDataCard(ctx, "c1"))
	require.NoError(t, c.PurgeDataCard(ctx, "c1"))
	require.NoError(t, c.RestoreAllDataCards(ctx))
	require.NoError(t, c.PurgeAllDataCards(ctx))

	assert.Equal(t, []string{
		"delete_datacard", "restore_datacard", "purge_datacard",
		"restore_all_datacards", "purge_all_datacards",
	}, f.commands)
}

func TestBankCardCommands(t *testing.T) {
	f := &fakeInvoker{replies: map[string]string{
		"list_bank_cards_summary_command": `[{"id":"b1","title":"Visa","last_four":"4242"}]`,
	}}
	c := New(f)
	ctx := context.Background()

	out, err := c.ListBankCardSummaries(ctx, false)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "4242", out[0].LastFour)

	require.NoError(t, c.DeleteBankCard(ctx, "b1"))
	require.NoError(t, c.SetBankCardFavorite(ctx, "b1", false))

	assert.Equal(t, []string{
		"list_bank_cards_summary_command", "delete_bank_card", "set_bank_card_favorite",
	}, f.commands)
}

func TestFolderCommands(t *testing.T) {
	f := &fakeInvoker{replies: map[string]string{
		"create_folder": `{"id":"f1","name":"Work","parent_id":null,"is_system":false}`,
	}}
	c := New(f)
	ctx := context.Background()

	folder, err := c.CreateFolder(ctx, "Work", nil)
	require.NoError(t, err)
	assert.Equal(t, "f1", folder.ID)
	assert.JSONEq(t, `{"name":"Work","parent_id":null}`, f.lastArgsJSON(t))

	require.NoError(t, c.DeleteFolderOnly(ctx, "f1"))
	require.NoError(t, c.DeleteFolderAndCards(ctx, "f1"))
	assert.Equal(t, []string{"create_folder", "delete_folder_only", "delete_folder_and_cards"}, f.commands)
}

func TestUnlockVault_SendsPassword(t *testing.T) {
	f := &fakeInvoker{replies: map[string]string{
		"unlock_vault": `{"id":"p1","name":"Personal"}`,
	}}
	c := New(f)

	profile, err := c.UnlockVault(context.Background(), []byte("hunter2"))
	require.NoError(t, err)

	assert.Equal(t, "p1", profile.ID)
	assert.JSONEq(t, `{"password":"hunter2"}`, f.lastArgsJSON(t))
}

func TestClipboardCommands(t *testing.T) {
	f := &fakeInvoker{}
	c := New(f)
	ctx := context.Background()

	require.NoError(t, c.CopyToClipboard(ctx, "secret"))
	require.NoError(t, c.WipeClipboard(ctx, "secret"))

	assert.Equal(t, []string{"clipboard_copy", "clipboard_wipe"}, f.commands)
	assert.JSONEq(t, `{"expected":"secret"}`, f.lastArgsJSON(t))
}

func TestAttachmentCommands(t *testing.T) {
	f := &fakeInvoker{replies: map[string]string{
		"add_datacard_attachment": `{"id":"a1","file_name":"scan.pdf","size":3}`,
		"get_datacard_attachment": `{"content":"` + "AQID" + `"}`,
	}}
	c := New(f)
	ctx := context.Background()

	att, err := c.AddDataCardAttachment(ctx, "c1", "scan.pdf", []byte{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, "a1", att.ID)

	content, err := c.GetDataCardAttachment(ctx, "c1", "a1")
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3}, content)
}

func TestInvokeErrorPropagates(t *testing.T) {
	f := &fakeInvoker{err: context.DeadlineExceeded}
	c := New(f)

	_, err := c.GetDataCard(context.Background(), "c1")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
