package models

// ChecklistItemDef describes one inspectable item of the built-in checklist.
type ChecklistItemDef struct {
	ID       string `json:"id"`
	Label    string `json:"label"`
	Category string `json:"category"`
}

// ChecklistCategory groups related checklist items.
type ChecklistCategory struct {
	ID    string             `json:"id"`
	Title string             `json:"title"`
	Items []ChecklistItemDef `json:"items"`
}

// ChecklistSchema is the fixed inspection checklist presented to drivers.
var ChecklistSchema = []ChecklistCategory{
	{
		ID:    "mechanics",
		Title: "Mecânica",
		Items: []ChecklistItemDef{
			{ID: "mec_oil", Label: "Nível de óleo do motor", Category: "mechanics"},
			{ID: "mec_water", Label: "Nível da água / Arrefecimento", Category: "mechanics"},
			{ID: "mec_brake_fluid", Label: "Fluido de freio", Category: "mechanics"},
			{ID: "mec_steering", Label: "Fluido da direção hidráulica", Category: "mechanics"},
			{ID: "mec_leaks", Label: "Vazamentos visíveis", Category: "mechanics"},
			{ID: "mec_noise", Label: "Ruídos anormais", Category: "mechanics"},
			{ID: "mec_belts", Label: "Correias e mangueiras", Category: "mechanics"},
		},
	},
	{
		ID:    "tires",
		Title: "Pneus",
		Items: []ChecklistItemDef{
			{ID: "tire_pressure", Label: "Calibração", Category: "tires"},
			{ID: "tire_state", Label: "Estado geral (desgaste/bolhas)", Category: "tires"},
			{ID: "tire_step", Label: "Step em condições", Category: "tires"},
			{ID: "tire_tools", Label: "Chave de roda e macaco", Category: "tires"},
		},
	},
	{
		ID:    "electric",
		Title: "Elétrica",
		Items: []ChecklistItemDef{
			{ID: "elec_highbeam", Label: "Farol alto e baixo", Category: "electric"},
			{ID: "elec_tail", Label: "Lanternas e Setas", Category: "electric"},
			{ID: "elec_brake_light", Label: "Luz de freio e ré", Category: "electric"},
			{ID: "elec_panel", Label: "Painel e indicadores", Category: "electric"},
			{ID: "elec_horn", Label: "Buzina", Category: "electric"},
		},
	},
	{
		ID:    "safety",
		Title: "Segurança",
		Items: []ChecklistItemDef{
			{ID: "safe_seatbelt", Label: "Cinto de segurança", Category: "safety"},
			{ID: "safe_extinguisher", Label: "Extintor (validade)", Category: "safety"},
			{ID: "safe_triangle", Label: "Triângulo", Category: "safety"},
			{ID: "safe_firstaid", Label: "Kit primeiros socorros", Category: "safety"},
		},
	},
	{
		ID:    "body",
		Title: "Lataria",
		Items: []ChecklistItemDef{
			{ID: "body_trunk", Label: "Porta-malas", Category: "body"},
			{ID: "body_glass", Label: "Vidros (trincas)", Category: "body"},
			{ID: "body_bumpers", Label: "Para-choques", Category: "body"},
			{ID: "body_doors", Label: "Portas e fechaduras", Category: "body"},
		},
	},
	{
		ID:    "interior",
		Title: "Interior",
		Items: []ChecklistItemDef{
			{ID: "int_seats", Label: "Bancos", Category: "interior"},
			{ID: "int_ac", Label: "Ar-condicionado", Category: "interior"},
			{ID: "int_smell", Label: "Odores / Limpeza", Category: "interior"},
		},
	},
}

// RequiredPhotos returns the photo slots every checklist starts from.
func RequiredPhotos() []PhotoEvidence {
	return []PhotoEvidence{
		{ID: "photo_front", Label: "Frente do Veículo", Required: true},
		{ID: "photo_back", Label: "Traseira do Veículo", Required: true},
		{ID: "photo_side_left", Label: "Lateral Esquerda", Required: true},
		{ID: "photo_side_right", Label: "Lateral Direita", Required: true},
		{ID: "photo_odometer", Label: "Hodômetro", Required: true},
		{ID: "photo_damage", Label: "Avarias (se houver)", Required: false},
	}
}

// KnownChecklistItem reports whether an item ID belongs to the built-in schema.
func KnownChecklistItem(id string) bool {
	for _, cat := range ChecklistSchema {
		for _, item := range cat.Items {
			if item.ID == id {
				return true
			}
		}
	}
	return false
}
