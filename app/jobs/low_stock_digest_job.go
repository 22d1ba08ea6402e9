package jobs

import (
	"fmt"
	"strings"

	"github.com/shashiranjanraj/kashvi-store/app/repositories"
	"github.com/shashiranjanraj/kashvi-store/config"
	"github.com/shashiranjanraj/kashvi-store/pkg/mail"
)

// LowStockDigestJob mails the admin a list of gemstones at or below their
// low-stock threshold. Scheduled daily; skips the email when nothing is low.
type LowStockDigestJob struct{}

func (j LowStockDigestJob) Handle() error {
	gems, err := repositories.NewGemstoneRepository().LowStock()
	if err != nil {
		return fmt.Errorf("low stock digest: %w", err)
	}
	if len(gems) == 0 {
		return nil
	}

	var b strings.Builder
	b.WriteString("<p>Gemstones running low:</p><ul>")
	for _, g := range gems {
		fmt.Fprintf(&b, "<li>%s — %d left (threshold %d)</li>", g.Name, g.Stock, g.LowStockThreshold)
	}
	b.WriteString("</ul>")

	return mail.To(config.AdminEmail()).
		Subject(fmt.Sprintf("Low stock digest — %d item(s)", len(gems))).
		Body(b.String()).
		Send()
}
