package i18n

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func newTestTranslator(t *testing.T) *Translator {
	t.Helper()
	tr, err := NewTranslator("es", zerolog.Nop())
	require.NoError(t, err)
	return tr
}

func TestTranslatorDefaultLocale(t *testing.T) {
	tr := newTestTranslator(t)

	require.Equal(t, "El evento no existe.", tr.T("", "error.event_not_found", nil))
	require.Equal(t, "Inscripción exitosa.", tr.T("es-AR", "enrollment.created", nil))
}

func TestTranslatorAcceptLanguage(t *testing.T) {
	tr := newTestTranslator(t)

	require.Equal(t, "The event does not exist.", tr.T("en-US,en;q=0.9,es;q=0.8", "error.event_not_found", nil))
	require.Equal(t, "El evento no existe.", tr.T("fr-FR", "error.event_not_found", nil))
}

func TestTranslatorTemplateData(t *testing.T) {
	tr := newTestTranslator(t)

	msg := tr.T("en", "error.validation_failed", map[string]any{"Details": "id must be greater than 0"})
	require.Equal(t, "Invalid parameters: id must be greater than 0", msg)
}

func TestTranslatorUnknownKey(t *testing.T) {
	tr := newTestTranslator(t)

	require.Equal(t, "error.nope", tr.T("es", "error.nope", nil))
	require.Empty(t, tr.T("es", "", nil))
}

func TestCatalogsCoverTheSameKeys(t *testing.T) {
	tr := newTestTranslator(t)
	keys := []string{
		"enrollment.created",
		"enrollment.removed",
		"error.event_not_found",
		"error.already_enrolled",
		"error.capacity_exceeded",
		"error.event_not_future",
		"error.enrollment_disabled",
		"error.not_enrolled",
		"error.storage_error",
		"error.internal_error",
		"error.unauthorized",
		"error.invalid_token",
		"error.route_not_found",
		"error.user_not_found",
		"error.method_not_allowed",
		"error.bad_request",
		"unenroll.event_not_future",
	}
	for _, key := range keys {
		for _, locale := range []string{"es", "en"} {
			require.NotEqual(t, key, tr.T(locale, key, nil), "%s missing in %s", key, locale)
		}
	}
}

func TestNewTranslatorRejectsBadLocale(t *testing.T) {
	_, err := NewTranslator("not a locale!", zerolog.Nop())
	require.Error(t, err)
}
