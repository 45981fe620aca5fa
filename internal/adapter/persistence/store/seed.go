package store

import "avflow/internal/domain/entities"

// Initial dataset used when a collection key has never been persisted.

func seedEquipments() []entities.Equipment {
	return []entities.Equipment{
		{ID: "1", Name: "Notebook Dell G15", Category: "Informática", TotalQuantity: 10, DailyRate: 150},
		{ID: "2", Name: "Painel LED P3 Indoor (m²)", Category: "Vídeo/LED", TotalQuantity: 50, DailyRate: 350},
		{ID: "3", Name: "Mesa de Som Behringer X32", Category: "Som", TotalQuantity: 3, DailyRate: 450},
		{ID: "4", Name: "Par LED 18x12w RGBW", Category: "Iluminação", TotalQuantity: 24, DailyRate: 45},
		{ID: "5", Name: "Microfone Shure SM58", Category: "Som", TotalQuantity: 12, DailyRate: 60},
	}
}

func seedClients() []entities.Client {
	return []entities.Client{
		{ID: "1", Name: "João Silva", Company: "Tech Events", Whatsapp: "11999999999", Email: "joao@tech.com"},
		{ID: "2", Name: "Maria Souza", Company: "Agência Criativa", Whatsapp: "11888888888", Email: "maria@criativa.com"},
	}
}
