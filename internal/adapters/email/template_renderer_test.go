package email

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"partyplanner/internal/domain"
)

func TestTemplateRenderer_Invitation(t *testing.T) {
	r, err := NewTemplateRenderer()
	require.NoError(t, err)

	subject, html, text, err := r.Render("invitation", &domain.InvitationEmailData{
		GuestName: "A. Coots",
		Theme:     "Tom & Jerry",
		When:      "Saturday, November 14, 2026 at 7:30 PM",
		Plan:      "Party Plan for Tom & Jerry:\n- chase <cheese>",
		HostName:  "R. Alhawash",
	})
	require.NoError(t, err)

	assert.Equal(t, "You're invited: Tom & Jerry on Saturday, November 14, 2026 at 7:30 PM", subject)
	assert.Contains(t, text, "Hi A. Coots,")
	assert.Contains(t, text, "- chase <cheese>")
	assert.Contains(t, html, "Tom &amp; Jerry")
	assert.Contains(t, html, "chase &lt;cheese&gt;")
	assert.NotContains(t, html, "<cheese>")
}

func TestTemplateRenderer_UnknownTemplate(t *testing.T) {
	r, err := NewTemplateRenderer()
	require.NoError(t, err)
	_, _, _, err = r.Render("welcome", nil)
	require.Error(t, err)
}
