package handlers

import (
	"net/http"

	"school-catering-api/statemachine"

	"github.com/gin-gonic/gin"
)

// GetPaymentLifecycle returns the payment state machine for informational purposes
func GetPaymentLifecycle(c *gin.Context) {
	transitions := statemachine.GetAllTransitions()
	info := make([]gin.H, 0, len(transitions))
	for _, t := range transitions {
		info = append(info, gin.H{"from": t.From, "to": t.To, "actor": t.Actor})
	}
	c.JSON(http.StatusOK, gin.H{
		"state_machine":   info,
		"terminal_states": []string{"paid"},
		"description":     "Catering Order Payment Lifecycle State Machine",
	})
}
