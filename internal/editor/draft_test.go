package editor

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vedicvision/vvadmin/internal/api"
)

func completeField(name string) api.FormField {
	return api.FormField{Name: name, Label: "Label " + name, Type: "text"}
}

func TestNewSchemaDraft(t *testing.T) {
	draft := NewSchemaDraft()

	assert.True(t, draft.IsNew())
	assert.True(t, draft.IsActive)
	assert.Empty(t, draft.Fields)
}

func TestDraftFromCopiesFields(t *testing.T) {
	form := api.ServiceForm{
		ID:          7,
		ServiceName: "kundli",
		DisplayName: "Kundli Analysis",
		FormFields:  []api.FormField{completeField("birth_place")},
		IsActive:    true,
	}

	draft := DraftFrom(form)

	require.False(t, draft.IsNew())
	require.Len(t, draft.Fields, 1)

	// Mutating the draft must not reach back into the fetched form
	draft.Fields[0].Name = "changed"
	assert.Equal(t, "birth_place", form.FormFields[0].Name)
}

func TestAddAndRemoveField(t *testing.T) {
	draft := NewSchemaDraft()

	draft.AddField()
	require.Len(t, draft.Fields, 1)
	assert.Equal(t, "text", draft.Fields[0].Type)

	draft.AddField()
	draft.Fields[0].Name = "first"
	draft.Fields[1].Name = "second"

	draft.RemoveField(0)
	require.Len(t, draft.Fields, 1)
	assert.Equal(t, "second", draft.Fields[0].Name)

	// Out-of-range indices are ignored
	draft.RemoveField(5)
	draft.RemoveField(-1)
	assert.Len(t, draft.Fields, 1)
}

func TestUpdateField(t *testing.T) {
	draft := NewSchemaDraft()
	draft.AddField()

	require.NoError(t, draft.UpdateField(0, "name", "email"))
	require.NoError(t, draft.UpdateField(0, "label", "Email Address"))
	require.NoError(t, draft.UpdateField(0, "type", "email"))
	require.NoError(t, draft.UpdateField(0, "required", true))
	require.NoError(t, draft.UpdateField(0, "placeholder", "you@example.com"))

	field := draft.Fields[0]
	assert.Equal(t, "email", field.Name)
	assert.Equal(t, "Email Address", field.Label)
	assert.Equal(t, "email", field.Type)
	assert.True(t, field.Required)
	assert.Equal(t, "you@example.com", field.Placeholder)
}

func TestUpdateFieldRejectsBadInput(t *testing.T) {
	draft := NewSchemaDraft()
	draft.AddField()

	assert.Error(t, draft.UpdateField(3, "name", "x"))
	assert.Error(t, draft.UpdateField(0, "type", "dropdown"))
	assert.Error(t, draft.UpdateField(0, "color", "red"))
}

func TestOptionEditing(t *testing.T) {
	draft := NewSchemaDraft()
	draft.AddField()
	require.NoError(t, draft.UpdateField(0, "type", "select"))

	draft.AddOption(0)
	draft.AddOption(0)
	draft.UpdateOption(0, 0, "Male")
	draft.UpdateOption(0, 1, "Female")
	require.Equal(t, []string{"Male", "Female"}, draft.Fields[0].Options)

	draft.RemoveOption(0, 0)
	assert.Equal(t, []string{"Female"}, draft.Fields[0].Options)

	// Out-of-range field or option indices are ignored
	draft.AddOption(9)
	draft.UpdateOption(0, 9, "x")
	draft.RemoveOption(0, 9)
	assert.Equal(t, []string{"Female"}, draft.Fields[0].Options)
}

func TestSchemaDraftValidate(t *testing.T) {
	base := func() *SchemaDraft {
		d := NewSchemaDraft()
		d.ServiceName = "kundli"
		d.DisplayName = "Kundli Analysis"
		d.Fields = []api.FormField{completeField("birth_place")}
		return d
	}

	tests := []struct {
		name    string
		mutate  func(*SchemaDraft)
		wantErr string
	}{
		{
			name:   "valid draft",
			mutate: func(d *SchemaDraft) {},
		},
		{
			name:    "missing service name",
			mutate:  func(d *SchemaDraft) { d.ServiceName = "  " },
			wantErr: "service name is required",
		},
		{
			name:    "missing display name",
			mutate:  func(d *SchemaDraft) { d.DisplayName = "" },
			wantErr: "display name is required",
		},
		{
			name: "field missing label",
			mutate: func(d *SchemaDraft) {
				d.Fields[0].Label = ""
			},
			wantErr: "needs a name, label and type",
		},
		{
			name: "duplicate field names",
			mutate: func(d *SchemaDraft) {
				d.Fields = append(d.Fields, completeField("birth_place"))
			},
			wantErr: "duplicate field name",
		},
		{
			name: "select with no options",
			mutate: func(d *SchemaDraft) {
				d.Fields[0].Type = "select"
			},
			wantErr: "needs at least one option",
		},
		{
			name: "select with only blank options",
			mutate: func(d *SchemaDraft) {
				d.Fields[0].Type = "select"
				d.Fields[0].Options = []string{"", "  "}
			},
			wantErr: "needs at least one option",
		},
		{
			name: "radio with an option",
			mutate: func(d *SchemaDraft) {
				d.Fields[0].Type = "radio"
				d.Fields[0].Options = []string{"Yes"}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			draft := base()
			tt.mutate(draft)

			err := draft.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestPayloadDropsIncompleteFields(t *testing.T) {
	draft := NewSchemaDraft()
	draft.ServiceName = "kundli"
	draft.DisplayName = "Kundli Analysis"
	draft.Fields = []api.FormField{
		{Name: "birth_place", Label: "Birth Place", Type: "text"},
		{Name: "birth_time", Type: "time"}, // no label
	}

	payload := draft.Payload()

	require.Len(t, payload.FormFields, 1)
	assert.Equal(t, "birth_place", payload.FormFields[0].Name)

	// The draft itself keeps the incomplete row for further editing
	assert.Len(t, draft.Fields, 2)
}

func TestSchemaDraftSubmit(t *testing.T) {
	tests := []struct {
		name       string
		id         int
		wantMethod string
		wantPath   string
	}{
		{"create dispatches POST", 0, http.MethodPost, "/admin/forms"},
		{"update dispatches PUT", 12, http.MethodPut, "/admin/forms/12"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotMethod, gotPath string
			var gotPayload api.ServiceFormPayload

			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotMethod = r.Method
				gotPath = r.URL.Path
				require.NoError(t, json.NewDecoder(r.Body).Decode(&gotPayload))
				w.WriteHeader(http.StatusOK)
			}))
			defer server.Close()

			draft := NewSchemaDraft()
			draft.ID = tt.id
			draft.ServiceName = "kundli"
			draft.DisplayName = "Kundli Analysis"
			draft.Fields = []api.FormField{
				completeField("birth_place"),
				{Name: "partial", Type: "text"}, // incomplete, dropped on submit
			}

			client := api.NewClient(server.URL)
			require.NoError(t, draft.Submit(context.Background(), client))

			assert.Equal(t, tt.wantMethod, gotMethod)
			assert.Equal(t, tt.wantPath, gotPath)
			require.Len(t, gotPayload.FormFields, 1)
			assert.Equal(t, "birth_place", gotPayload.FormFields[0].Name)
		})
	}
}

func TestFieldTypeHelpers(t *testing.T) {
	assert.True(t, ValidFieldType("textarea"))
	assert.False(t, ValidFieldType("dropdown"))

	assert.True(t, NeedsOptions("select"))
	assert.True(t, NeedsOptions("radio"))
	assert.True(t, NeedsOptions("checkbox"))
	assert.False(t, NeedsOptions("text"))
}
