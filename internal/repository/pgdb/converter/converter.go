package converter

import "github.com/DRSN-tech/storefront/internal/usecase"

// OutboxEventConverter преобразует OutboxEvent между usecase и моделью PostgreSQL.
type OutboxEventConverter struct{}

func (OutboxEventConverter) ToModel(entity *usecase.OutboxEvent) *OutboxEventModel {
	return &OutboxEventModel{
		ID:          entity.ID,
		EventID:     entity.EventID,
		EventType:   string(entity.EventType),
		AggregateID: entity.AggregateID,
		Payload:     entity.Payload,
		Status:      string(entity.Status),
		CreatedAt:   entity.CreatedAt,
		ProcessedAt: entity.ProcessedAt,
	}
}

func (OutboxEventConverter) ToEntity(model *OutboxEventModel) *usecase.OutboxEvent {
	return &usecase.OutboxEvent{
		ID:          model.ID,
		EventID:     model.EventID,
		EventType:   usecase.OutboxEventType(model.EventType),
		AggregateID: model.AggregateID,
		Payload:     model.Payload,
		Status:      usecase.OutboxStatus(model.Status),
		CreatedAt:   model.CreatedAt,
		ProcessedAt: model.ProcessedAt,
	}
}

func (c OutboxEventConverter) ToArrEntity(models []*OutboxEventModel) []*usecase.OutboxEvent {
	res := make([]*usecase.OutboxEvent, 0, len(models))
	for _, m := range models {
		res = append(res, c.ToEntity(m))
	}

	return res
}

// PlacedOrderConverter преобразует PlacedOrder между usecase и моделью PostgreSQL.
type PlacedOrderConverter struct{}

func (PlacedOrderConverter) ToModel(entity *usecase.PlacedOrder) *PlacedOrderModel {
	return &PlacedOrderModel{
		OrderID:       entity.OrderID,
		SessionID:     entity.SessionID,
		Total:         entity.Total,
		FulfillmentAt: entity.FulfillmentAt,
		CreatedAt:     entity.CreatedAt,
	}
}

func (PlacedOrderConverter) ToEntity(model *PlacedOrderModel) usecase.PlacedOrder {
	return usecase.PlacedOrder{
		OrderID:       model.OrderID,
		SessionID:     model.SessionID,
		Total:         model.Total,
		FulfillmentAt: model.FulfillmentAt,
		CreatedAt:     model.CreatedAt,
	}
}
