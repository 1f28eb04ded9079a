//go:build unit

package followup_test

import (
	"testing"

	"talentbridge/internal/domain/followup"

	"github.com/stretchr/testify/assert"
)

func TestRenderTemplate(t *testing.T) {
	tc := followup.TemplateContext{FirstName: "Jane", FullName: "Jane Doe", PipelineStage: "interview"}

	tests := []struct {
		name string
		body string
		ctx  followup.TemplateContext
		want string
	}{
		{name: "全てのプレースホルダー", body: "Hi {first_name} ({full_name}), stage: {pipeline_stage}", ctx: tc, want: "Hi Jane (Jane Doe), stage: interview"},
		{name: "繰り返し出現", body: "{first_name} {first_name}", ctx: tc, want: "Jane Jane"},
		{name: "空の値は N/A", body: "Stage: {pipeline_stage}", ctx: followup.TemplateContext{FirstName: "Jane"}, want: "Stage: N/A"},
		{name: "空白のみも N/A", body: "Hi {first_name}", ctx: followup.TemplateContext{FirstName: "  "}, want: "Hi N/A"},
		{name: "未知のプレースホルダーはそのまま", body: "Hi {nickname}", ctx: tc, want: "Hi {nickname}"},
		{name: "プレースホルダーなし", body: "Plain text", ctx: tc, want: "Plain text"},
		{
			name: "挿入された値は再展開しない",
			body: "Hi {full_name}",
			ctx:  followup.TemplateContext{FullName: "Ann {pipeline_stage}", PipelineStage: "screening"},
			want: "Hi Ann {pipeline_stage}",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, followup.RenderTemplate(tt.body, tt.ctx))
		})
	}
}

func TestFirstName(t *testing.T) {
	assert.Equal(t, "Jane", followup.FirstName("Jane Marie Doe"))
	assert.Equal(t, "Jane", followup.FirstName("  Jane  "))
	assert.Equal(t, "", followup.FirstName(""))
}

func TestStatus(t *testing.T) {
	_, err := followup.ParseStatus("delivered")
	assert.ErrorIs(t, err, followup.ErrInvalidStatus)

	s, err := followup.ParseStatus("processing")
	assert.NoError(t, err)
	assert.True(t, s.IsOutstanding())

	assert.True(t, followup.StatusPending.CanTransitionTo(followup.StatusCanceled))
	assert.False(t, followup.StatusPending.CanTransitionTo(followup.StatusSent))
	assert.True(t, followup.StatusProcessing.CanTransitionTo(followup.StatusFailed))
	assert.False(t, followup.StatusSent.CanTransitionTo(followup.StatusPending))
}

func TestRenderTemplate_Deterministic(t *testing.T) {
	tc := followup.TemplateContext{FirstName: "{full_name}", FullName: "Ann {pipeline_stage}", PipelineStage: "{first_name}"}
	body := "{first_name}|{full_name}|{pipeline_stage}"

	want := "{full_name}|Ann {pipeline_stage}|{first_name}"
	for range 200 {
		assert.Equal(t, want, followup.RenderTemplate(body, tc))
	}
}
