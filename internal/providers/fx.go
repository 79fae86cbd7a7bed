package providers

import (
	"go.uber.org/fx"

	"github.com/servostack/garagedesk/internal/providers/email"
	"github.com/servostack/garagedesk/internal/providers/pdf"
)

var Module = fx.Module("providers",
	email.Module,
	pdf.Module,
)
