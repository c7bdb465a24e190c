package services

import (
	"log"
	"time"
)

// StartScheduler starts the background maintenance loop. Each tick it calls
// purgeTokens, which removes expired password reset tokens and reports how
// many were dropped.
func StartScheduler(purgeTokens func() int) {
	go func() {
		log.Println("Scheduler started...")
		ticker := time.NewTicker(1 * time.Minute)
		defer ticker.Stop()

		for range ticker.C {
			if n := purgeTokens(); n > 0 {
				log.Printf("Purged %d expired password reset tokens", n)
			}
		}
	}()
}
