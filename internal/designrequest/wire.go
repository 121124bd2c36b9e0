package designrequest

import (
	"go.uber.org/zap"

	"signflow/internal/designrequest/controller"
	"signflow/internal/designrequest/usecase"
	"signflow/internal/workflow"
)

func NewModule(state *workflow.State, orchestrator *workflow.Orchestrator, logger *zap.Logger) *controller.DesignRequestController {
	views := usecase.NewDesignRequestViewUseCase(state, logger)
	return controller.NewDesignRequestController(views, orchestrator, logger)
}
