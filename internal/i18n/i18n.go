// Package i18n holds the Italian and Spanish UI strings.
package i18n

import (
	"errors"
	"strings"

	"golang.org/x/text/language"

	"github.com/jask/riparto/internal/apportion"
)

// Lang is a supported UI language.
type Lang string

const (
	IT Lang = "it"
	ES Lang = "es"
)

// ParseLang returns the language named by s, defaulting to Italian.
func ParseLang(s string) Lang {
	switch Lang(strings.ToLower(strings.TrimSpace(s))) {
	case ES:
		return ES
	default:
		return IT
	}
}

// Toggle switches between the two languages.
func (l Lang) Toggle() Lang {
	if l == ES {
		return IT
	}
	return ES
}

// Tag is the language tag used for number formatting.
func (l Lang) Tag() language.Tag {
	if l == ES {
		return language.Spanish
	}
	return language.Italian
}

func (l Lang) String() string { return string(l) }

// T returns the string for key in lang, or key itself when it is unknown.
func T(lang Lang, key string) string {
	if s, ok := catalog[lang][key]; ok {
		return s
	}
	if s, ok := catalog[IT][key]; ok {
		return s
	}
	return key
}

// ErrorMessage localizes apportionment failures using the alert texts shown
// to the user; other errors are returned verbatim.
func ErrorMessage(lang Lang, err error) string {
	if err == nil {
		return ""
	}
	var aerr *apportion.Error
	if !errors.As(err, &aerr) {
		return err.Error()
	}
	switch aerr.Kind {
	case apportion.NegativeBalance:
		return T(lang, "alert_neg_saldi")
	case apportion.NegativeTotal:
		return T(lang, "alert_tot_neg")
	case apportion.EmptyEntitySet:
		return T(lang, "alert_add_agent")
	case apportion.OutOfRange:
		return T(lang, "alert_too_large")
	case apportion.InternalConsistency:
		return T(lang, "internal_sum_error")
	}
	return err.Error()
}

var catalog = map[Lang]map[string]string{
	IT: {
		"title":              "Ripartizione proporzionale tra agenti",
		"intro":              "Distribuisci la quantità (unità) e l'importo (€) in base al saldo di ciascun agente.",
		"section_totals":     "1) Totali",
		"totals_qty":         "Quantità totale (unità)",
		"totals_amount":      "Importo totale (€)",
		"section_agents":     "2) Agenti",
		"add_agent":          "Aggiungi agente",
		"remove_agent":       "Rimuovi agente",
		"reset_sample":       "Ripristina esempio",
		"th_hash":            "#",
		"th_nome":            "Nome",
		"th_cognome":         "Cognome",
		"th_saldo":           "Saldo",
		"th_action":          "Azione",
		"section_result":     "3) Risultato",
		"section_nav":        "4) Navigazione agenti",
		"calc":               "Calcola",
		"clear_results":      "Pulisci risultati",
		"th_qty":             "Quantità",
		"th_amount":          "Importo (€)",
		"total_label":        "Totale:",
		"nav_prev":           "Precedente",
		"nav_next":           "Successivo",
		"nav_empty":          "Nessun agente",
		"nav_no_result":      "Nessun risultato: premi Calcola.",
		"history":            "Storico calcoli",
		"history_empty":      "Nessun calcolo salvato.",
		"th_date":            "Data",
		"th_agents":          "Agenti",
		"lang_switched":      "Lingua: italiano",
		"calc_done":          "Ripartizione calcolata.",
		"results_cleared":    "Risultati puliti.",
		"sample_restored":    "Esempio ripristinato.",
		"roster_saved":       "Agenti salvati.",
		"invalid_number":     "Numero non valido.",
		"dup_agent":          "Possibile duplicato di",
		"edit":               "Modifica",
		"quit":               "Esci",
		"alert_neg_saldi":    "Saldi negativi non consentiti.",
		"alert_tot_neg":      "I totali non possono essere negativi.",
		"alert_too_large":    "Il totale è troppo grande.",
		"alert_add_agent":    "Aggiungi almeno un agente.",
		"internal_sum_error": "Le somme non tornano (errore interno).",
		"calc_error":         "Errore nel calcolo della ripartizione.",
	},
	ES: {
		"title":              "Reparto proporcional entre agentes",
		"intro":              "Distribuye la cantidad (unidades) y el importe (€) según el saldo de cada agente.",
		"section_totals":     "1) Totales",
		"totals_qty":         "Cantidad total (unidades)",
		"totals_amount":      "Importe total (€)",
		"section_agents":     "2) Agentes",
		"add_agent":          "Añadir agente",
		"remove_agent":       "Eliminar agente",
		"reset_sample":       "Restablecer ejemplo",
		"th_hash":            "#",
		"th_nome":            "Nombre",
		"th_cognome":         "Apellido",
		"th_saldo":           "Saldo",
		"th_action":          "Acción",
		"section_result":     "3) Resultado",
		"section_nav":        "4) Navegación de agentes",
		"calc":               "Calcular",
		"clear_results":      "Limpiar resultados",
		"th_qty":             "Cantidad",
		"th_amount":          "Importe (€)",
		"total_label":        "Total:",
		"nav_prev":           "Anterior",
		"nav_next":           "Siguiente",
		"nav_empty":          "Ningún agente",
		"nav_no_result":      "Sin resultado: pulsa Calcular.",
		"history":            "Historial de cálculos",
		"history_empty":      "No hay cálculos guardados.",
		"th_date":            "Fecha",
		"th_agents":          "Agentes",
		"lang_switched":      "Idioma: español",
		"calc_done":          "Reparto calculado.",
		"results_cleared":    "Resultados limpiados.",
		"sample_restored":    "Ejemplo restablecido.",
		"roster_saved":       "Agentes guardados.",
		"invalid_number":     "Número no válido.",
		"dup_agent":          "Posible duplicado de",
		"edit":               "Editar",
		"quit":               "Salir",
		"alert_neg_saldi":    "Saldos negativos no permitidos.",
		"alert_tot_neg":      "Los totales no pueden ser negativos.",
		"alert_too_large":    "El total es demasiado grande.",
		"alert_add_agent":    "Añade al menos un agente.",
		"internal_sum_error": "Las sumas no coinciden (error interno).",
		"calc_error":         "Error en el cálculo del reparto.",
	},
}
