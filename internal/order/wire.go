package order

import (
	"go.uber.org/zap"

	"signflow/internal/order/controller"
	"signflow/internal/order/usecase"
	"signflow/internal/workflow"
)

func NewModule(state *workflow.State, orchestrator *workflow.Orchestrator, logger *zap.Logger) *controller.OrderController {
	views := usecase.NewOrderViewUseCase(state, logger)
	return controller.NewOrderController(views, orchestrator, logger)
}
