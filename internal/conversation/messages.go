package conversation

import "regexp"

const (
	promptReset    = "Ok. ¿Con cuánto reinicio la cuenta?"
	promptSubtract = "¿Cuánta plata querés restar?"
	promptAdd      = "¿Cuánta plata querés añadir?"

	msgResetDone    = "Listo. La cuenta ahora es %s"
	msgSubtractDone = "Listo. Resté %s y el total ahora es %s. ¿En qué gastaste esta plata?"
	msgAddDone      = "Listo. Añadí %s y el total ahora es %s"
	msgReport       = "Aquí va el reporte"
	msgStatus       = "Yo yo! Ahorita tengo %s en mi panza."

	msgNoNumber     = "¡No dijiste ningún número! Así no se puede... chao"
	msgWriteFailed  = "Uy, no pude guardar eso en la cuenta. Intentá de nuevo más tarde."
	msgReadFailed   = "Uy, no pude leer la cuenta. Intentá de nuevo más tarde."
	msgExpenseNoted = "Ok listo :)"

	// the total is already lowered, so the user must not retry
	msgExpenseNotLogged = "Ya resté la plata, pero no pude anotar el gasto en el reporte. No lo vuelvas a restar."

	colorNegative = "#c0392b"
	colorPositive = "#27ae60"
)

type flavorRule struct {
	pattern *regexp.Regexp
	reply   string
}

// expenseFlavor is checked in order; the first matching rule picks the reply.
var expenseFlavor = []flavorRule{
	{
		pattern: regexp.MustCompile(`(?i)birra|cerveza|guaro|drogas|weed`),
		reply:   "Ah bueeeno, mientras haya sido en eso todo bien!",
	},
	{
		pattern: regexp.MustCompile(`(?i)que le importa|qué le importa|what do you care|what do u care|fuck you`),
		reply:   "Está bien. Comé mucha *** entonces!",
	},
}

func expenseReply(description string) string {
	for _, rule := range expenseFlavor {
		if rule.pattern.MatchString(description) {
			return rule.reply
		}
	}
	return msgExpenseNoted
}
