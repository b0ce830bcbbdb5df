package entity

// Role es el rol de un usuario. Conjunto cerrado.
type Role string

const (
	RoleAdmin            Role = "admin"
	RoleBarManager       Role = "bar_manager"
	RoleWarehouseManager Role = "warehouse_manager"
	RoleBarman           Role = "barman"
)

// Valid indica si el rol pertenece al conjunto conocido.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleBarManager, RoleWarehouseManager, RoleBarman:
		return true
	}
	return false
}

// Location identifica uno de los bares. Conjunto cerrado.
type Location string

const (
	LocationDuzyBulldog Location = "duzy_bulldog"
	LocationMalyBulldog Location = "maly_bulldog"
	LocationGinBar      Location = "gin_bar"
)

// Locations lista todos los bares, en orden estable para reportes.
func Locations() []Location {
	return []Location{LocationDuzyBulldog, LocationMalyBulldog, LocationGinBar}
}

// Valid indica si la ubicación pertenece al conjunto conocido.
func (l Location) Valid() bool {
	switch l {
	case LocationDuzyBulldog, LocationMalyBulldog, LocationGinBar:
		return true
	}
	return false
}

// Category clasifica los productos del inventario.
type Category string

const (
	CategorySpirits    Category = "spirits"
	CategoryBeer       Category = "beer"
	CategoryWine       Category = "wine"
	CategorySoftDrinks Category = "soft_drinks"
	CategoryMixers     Category = "mixers"
	CategoryGarnishes  Category = "garnishes"
	CategoryOther      Category = "other"
)

// Valid indica si la categoría pertenece al conjunto conocido.
func (c Category) Valid() bool {
	switch c {
	case CategorySpirits, CategoryBeer, CategoryWine, CategorySoftDrinks,
		CategoryMixers, CategoryGarnishes, CategoryOther:
		return true
	}
	return false
}

// DeliveryStatus es el estado de una entrega de proveedor.
type DeliveryStatus string

const (
	DeliveryPending   DeliveryStatus = "pending"
	DeliveryInTransit DeliveryStatus = "in_transit"
	DeliveryDelivered DeliveryStatus = "delivered"
	DeliveryCancelled DeliveryStatus = "cancelled"
)

// Valid indica si el estado pertenece al conjunto conocido.
func (s DeliveryStatus) Valid() bool {
	switch s {
	case DeliveryPending, DeliveryInTransit, DeliveryDelivered, DeliveryCancelled:
		return true
	}
	return false
}

// Terminal indica si el estado no admite más transiciones.
func (s DeliveryStatus) Terminal() bool {
	return s == DeliveryDelivered || s == DeliveryCancelled
}

// ActivityType clasifica las entradas del registro de actividad.
type ActivityType string

const (
	ActivityLogin           ActivityType = "login"
	ActivityLogout          ActivityType = "logout"
	ActivityCreate          ActivityType = "create"
	ActivityUpdate          ActivityType = "update"
	ActivityDelete          ActivityType = "delete"
	ActivityStockChange     ActivityType = "stock_change"
	ActivityDelivery        ActivityType = "delivery"
	ActivityReportGenerated ActivityType = "report_generated"
)

// ReportType clasifica los reportes almacenados.
type ReportType string

const (
	ReportDaily     ReportType = "daily"
	ReportShift     ReportType = "shift"
	ReportInventory ReportType = "inventory"
	ReportUsage     ReportType = "usage"
	ReportDelivery  ReportType = "delivery"
	ReportForecast  ReportType = "forecast"
	ReportCustom    ReportType = "custom"
)

// Valid indica si el tipo de reporte pertenece al conjunto conocido.
func (t ReportType) Valid() bool {
	switch t {
	case ReportDaily, ReportShift, ReportInventory, ReportUsage,
		ReportDelivery, ReportForecast, ReportCustom:
		return true
	}
	return false
}
