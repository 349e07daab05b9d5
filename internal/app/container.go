package app

import (
	"context"

	"github.com/doeshing/sigil/internal/application/doctor"
	"github.com/doeshing/sigil/internal/application/prompt"
	"github.com/doeshing/sigil/internal/infrastructure/environment"
	"github.com/doeshing/sigil/internal/infrastructure/git"
	"github.com/doeshing/sigil/internal/infrastructure/shell"
	"github.com/doeshing/sigil/internal/infrastructure/theme"
	"github.com/doeshing/sigil/internal/pkg/logger"
	"github.com/doeshing/sigil/internal/ports"
)

// Container wires up application services with infrastructure adapters.
type Container struct {
	PromptService   *prompt.Service
	DoctorService   *doctor.Service
	ThemeProvider   ports.ThemeProvider
	ShellIntegrator ports.ShellIntegrator
	Logger          *logger.ZapLogger
}

// BuildContainer constructs the dependency graph. Nothing is loaded eagerly,
// so building never fails and the prompt can always render.
func BuildContainer(_ context.Context, verbose bool) (*Container, error) {
	log := logger.New(verbose)
	themeLoader := theme.NewEmbeddedLoader()
	inspector := git.NewInspector(log)
	collector := environment.NewCollector()
	shellInstaller := shell.NewInstaller(log)

	promptService := &prompt.Service{
		ThemeProvider: themeLoader,
		Inspector:     inspector,
		Environment:   collector,
		Fallback:      theme.DefaultTheme(),
		Logger:        log,
	}

	doctorService := &doctor.Service{
		ThemeProvider:   themeLoader,
		Inspector:       inspector,
		Environment:     collector,
		ShellIntegrator: shellInstaller,
	}

	return &Container{
		PromptService:   promptService,
		DoctorService:   doctorService,
		ThemeProvider:   themeLoader,
		ShellIntegrator: shellInstaller,
		Logger:          log,
	}, nil
}
