package i18n

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/jask/riparto/internal/apportion"
)

func TestParseLang(t *testing.T) {
	t.Parallel()

	require.Equal(t, ES, ParseLang("es"))
	require.Equal(t, ES, ParseLang(" ES "))
	require.Equal(t, IT, ParseLang("it"))
	require.Equal(t, IT, ParseLang("fr"))
	require.Equal(t, IT, ParseLang(""))
}

func TestToggleAndTag(t *testing.T) {
	t.Parallel()

	require.Equal(t, ES, IT.Toggle())
	require.Equal(t, IT, ES.Toggle())
	require.Equal(t, language.Italian, IT.Tag())
	require.Equal(t, language.Spanish, ES.Tag())
}

func TestCatalogsHaveSameKeys(t *testing.T) {
	t.Parallel()

	for key := range catalog[IT] {
		_, ok := catalog[ES][key]
		require.True(t, ok, "missing es translation for %q", key)
	}
	require.Len(t, catalog[ES], len(catalog[IT]))
}

func TestT(t *testing.T) {
	t.Parallel()

	require.Equal(t, "Calcola", T(IT, "calc"))
	require.Equal(t, "Calcular", T(ES, "calc"))
	require.Equal(t, "Calcola", T(Lang("fr"), "calc"))
	require.Equal(t, "no_such_key", T(ES, "no_such_key"))
}

func TestErrorMessage(t *testing.T) {
	t.Parallel()

	wrapped := fmt.Errorf("calculate: %w", &apportion.Error{Kind: apportion.NegativeBalance, Index: 3})
	require.Equal(t, "Saldi negativi non consentiti.", ErrorMessage(IT, wrapped))
	require.Equal(t, "Los totales no pueden ser negativos.", ErrorMessage(ES, apportion.ErrNegativeTotal))
	require.Equal(t, "Añade al menos un agente.", ErrorMessage(ES, apportion.ErrEmptyEntitySet))
	require.Equal(t, "Il totale è troppo grande.", ErrorMessage(IT, apportion.ErrOutOfRange))
	require.Equal(t, "Le somme non tornano (errore interno).", ErrorMessage(IT, apportion.ErrInternalConsistency))
	require.Equal(t, "disk full", ErrorMessage(IT, errors.New("disk full")))
	require.Empty(t, ErrorMessage(IT, nil))
}
