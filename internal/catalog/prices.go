package catalog

// PriceTable maps a repair kind to its price in whole KES.
// A kind absent from the table means the repair is not offered for that model.
type PriceTable map[RepairKind]int

// DeviceModel is one repairable model with its price table.
type DeviceModel struct {
	Model  string
	Prices PriceTable
}

// DeviceBrand groups the models the shop services for one manufacturer.
type DeviceBrand struct {
	Brand  string
	Models []DeviceModel
}

// repairPrices is the static pricing catalog: category -> brand -> model -> prices.
// Loaded once at process start, never mutated.
var repairPrices = map[string][]DeviceBrand{
	"phone": {
		{
			Brand: "Apple",
			Models: []DeviceModel{
				{Model: "iPhone 6/6s", Prices: PriceTable{ScreenRepair: 3000, BatteryReplacement: 2000, BackGlassRepair: 2500, SoftwareRepair: 1500}},
				{Model: "iPhone 6 Plus/6s Plus", Prices: PriceTable{ScreenRepair: 3500, BatteryReplacement: 2500, BackGlassRepair: 2500, SoftwareRepair: 1500}},
				{Model: "iPhone 7", Prices: PriceTable{ScreenRepair: 3000, BatteryReplacement: 2000, BackGlassRepair: 3500, SoftwareRepair: 1500}},
				{Model: "iPhone 7 Plus", Prices: PriceTable{ScreenRepair: 3500, BatteryReplacement: 2500, BackGlassRepair: 3500, SoftwareRepair: 1500}},
				{Model: "iPhone 8", Prices: PriceTable{ScreenRepair: 3500, BatteryReplacement: 2000, BackGlassRepair: 3500, SoftwareRepair: 2000}},
				{Model: "iPhone 8 Plus", Prices: PriceTable{ScreenRepair: 4000, BatteryReplacement: 2500, BackGlassRepair: 4000, SoftwareRepair: 2000}},
				{Model: "iPhone X", Prices: PriceTable{ScreenRepair: 5800, BatteryReplacement: 3500, BackGlassRepair: 4000, SoftwareRepair: 2500}},
				{Model: "iPhone XS", Prices: PriceTable{ScreenRepair: 6000, BatteryReplacement: 3600, BackGlassRepair: 4000, SoftwareRepair: 2500}},
				{Model: "iPhone XR", Prices: PriceTable{ScreenRepair: 5000, BatteryReplacement: 3500, BackGlassRepair: 4500, SoftwareRepair: 2500}},
				{Model: "iPhone XS Max", Prices: PriceTable{ScreenRepair: 7000, BatteryReplacement: 4000, BackGlassRepair: 3000, SoftwareRepair: 3000}},
				{Model: "iPhone 11", Prices: PriceTable{ScreenRepair: 5500, BatteryReplacement: 4000, BackGlassRepair: 4500, SoftwareRepair: 3000}},
				{Model: "iPhone 11 Pro", Prices: PriceTable{ScreenRepair: 8000, BatteryReplacement: 4500, BackGlassRepair: 4500, SoftwareRepair: 3500}},
				{Model: "iPhone 11 Pro Max", Prices: PriceTable{ScreenRepair: 9000, BatteryReplacement: 5000, BackGlassRepair: 5000, SoftwareRepair: 3500}},
				{Model: "iPhone 12 Mini", Prices: PriceTable{ScreenRepair: 10000, BatteryReplacement: 3500, BackGlassRepair: 5000, SoftwareRepair: 4000}},
				{Model: "iPhone 12", Prices: PriceTable{ScreenRepair: 10000, BatteryReplacement: 5000, BackGlassRepair: 5500, SoftwareRepair: 4000}},
				{Model: "iPhone 12 Pro", Prices: PriceTable{ScreenRepair: 11000, BatteryReplacement: 5000, BackGlassRepair: 6000, SoftwareRepair: 4500}},
				{Model: "iPhone 12 Pro Max", Prices: PriceTable{ScreenRepair: 14000, BatteryReplacement: 6500, BackGlassRepair: 6000, SoftwareRepair: 4500}},
				{Model: "iPhone 13", Prices: PriceTable{ScreenRepair: 15000, BatteryReplacement: 6500, BackGlassRepair: 6500, SoftwareRepair: 5000}},
				{Model: "iPhone 13 Pro", Prices: PriceTable{ScreenRepair: 20000, BatteryReplacement: 7000, BackGlassRepair: 7000, SoftwareRepair: 5000}},
				{Model: "iPhone 13 Pro Max", Prices: PriceTable{ScreenRepair: 23000, BatteryReplacement: 8000, BackGlassRepair: 7000, SoftwareRepair: 5500}},
				{Model: "iPhone 14", Prices: PriceTable{ScreenRepair: 15000, BatteryReplacement: 7000, BackGlassRepair: 8000, SoftwareRepair: 5500}},
				{Model: "iPhone 14 Pro", Prices: PriceTable{ScreenRepair: 25000, BatteryReplacement: 7500, BackGlassRepair: 9000, SoftwareRepair: 6000}},
				{Model: "iPhone 14 Pro Max", Prices: PriceTable{ScreenRepair: 30000, BatteryReplacement: 9000, BackGlassRepair: 9000, SoftwareRepair: 6000}},
				{Model: "iPhone 15", Prices: PriceTable{ScreenRepair: 26000, BatteryReplacement: 7500, BackGlassRepair: 9000, SoftwareRepair: 6500}},
				{Model: "iPhone 15 Pro", Prices: PriceTable{ScreenRepair: 32000, BatteryReplacement: 8000, BackGlassRepair: 9000, SoftwareRepair: 6500}},
				{Model: "iPhone 15 Pro Max", Prices: PriceTable{ScreenRepair: 40000, BatteryReplacement: 9000, BackGlassRepair: 9000, SoftwareRepair: 7000}},
			},
		},
		{
			Brand: "Samsung",
			Models: []DeviceModel{
				{Model: "Galaxy S24 Ultra", Prices: PriceTable{ScreenRepair: 45000, BatteryReplacement: 7000, BackGlassRepair: 4000, SoftwareRepair: 3000}},
				{Model: "Galaxy S24 Plus", Prices: PriceTable{ScreenRepair: 40000, BatteryReplacement: 7000, BackGlassRepair: 3500, SoftwareRepair: 3000}},
				{Model: "Galaxy S24", Prices: PriceTable{ScreenRepair: 30000, BatteryReplacement: 6500, BackGlassRepair: 3500, SoftwareRepair: 2500}},
				{Model: "Galaxy S23 Ultra", Prices: PriceTable{ScreenRepair: 40000, BatteryReplacement: 5500, BackGlassRepair: 4000, SoftwareRepair: 2500}},
				{Model: "Galaxy S23 Plus", Prices: PriceTable{ScreenRepair: 35000, BatteryReplacement: 5500, BackGlassRepair: 3500, SoftwareRepair: 2500}},
				{Model: "Galaxy S23", Prices: PriceTable{ScreenRepair: 25000, BatteryReplacement: 5000, BackGlassRepair: 3000, SoftwareRepair: 2000}},
				{Model: "Galaxy S22 Ultra", Prices: PriceTable{ScreenRepair: 35000, BatteryReplacement: 4000, BackGlassRepair: 3000, SoftwareRepair: 2000}},
				{Model: "Galaxy S22 Plus", Prices: PriceTable{ScreenRepair: 30000, BatteryReplacement: 4000, BackGlassRepair: 3500, SoftwareRepair: 2000}},
				{Model: "Galaxy S22", Prices: PriceTable{ScreenRepair: 25000, BatteryReplacement: 3500, BackGlassRepair: 3500, SoftwareRepair: 1800}},
				{Model: "Galaxy S21 Ultra", Prices: PriceTable{ScreenRepair: 30000, BatteryReplacement: 4000, BackGlassRepair: 3000, SoftwareRepair: 1800}},
				{Model: "Galaxy S21 Plus", Prices: PriceTable{ScreenRepair: 25000, BatteryReplacement: 4000, BackGlassRepair: 3000, SoftwareRepair: 1500}},
				{Model: "Galaxy S21", Prices: PriceTable{ScreenRepair: 22000, BatteryReplacement: 3500, BackGlassRepair: 4000, SoftwareRepair: 1500}},
				{Model: "Galaxy S21 FE", Prices: PriceTable{ScreenRepair: 15000, BatteryReplacement: 3000, BackGlassRepair: 3500, SoftwareRepair: 1500}},
				{Model: "Galaxy Note 20 Ultra", Prices: PriceTable{ScreenRepair: 30000, BatteryReplacement: 4000, BackGlassRepair: 4000, SoftwareRepair: 2000}},
				{Model: "Galaxy Note 20", Prices: PriceTable{ScreenRepair: 23000, BatteryReplacement: 3500, BackGlassRepair: 3500, SoftwareRepair: 2000}},
				{Model: "Galaxy A54", Prices: PriceTable{ScreenRepair: 13000, BatteryReplacement: 3000, BackGlassRepair: 1800, SoftwareRepair: 1200}},
				{Model: "Galaxy A34", Prices: PriceTable{ScreenRepair: 12000, BatteryReplacement: 2500, BackGlassRepair: 1700, SoftwareRepair: 1200}},
				{Model: "Galaxy A24", Prices: PriceTable{ScreenRepair: 10000, BatteryReplacement: 3000, BackGlassRepair: 1800, SoftwareRepair: 1000}},
			},
		},
	},
	"laptop": {
		{
			Brand: "Apple",
			Models: []DeviceModel{
				{Model: "MacBook Air M1", Prices: PriceTable{ScreenRepair: 25000, BatteryReplacement: 15000, KeyboardRepair: 12000, MotherboardRepair: 45000, SoftwareRepair: 5000}},
				{Model: "MacBook Air M2", Prices: PriceTable{ScreenRepair: 30000, BatteryReplacement: 18000, KeyboardRepair: 15000, MotherboardRepair: 50000, SoftwareRepair: 5000}},
				{Model: "MacBook Pro 13\"", Prices: PriceTable{ScreenRepair: 28000, BatteryReplacement: 16000, KeyboardRepair: 14000, MotherboardRepair: 48000, SoftwareRepair: 5500}},
				{Model: "MacBook Pro 14\"", Prices: PriceTable{ScreenRepair: 35000, BatteryReplacement: 20000, KeyboardRepair: 16000, MotherboardRepair: 55000, SoftwareRepair: 6000}},
				{Model: "MacBook Pro 16\"", Prices: PriceTable{ScreenRepair: 45000, BatteryReplacement: 25000, KeyboardRepair: 18000, MotherboardRepair: 65000, SoftwareRepair: 6000}},
				{Model: "iMac 21.5\"", Prices: PriceTable{ScreenRepair: 20000, MotherboardRepair: 40000, SpeakerRepair: 8000, SoftwareRepair: 4000}},
				{Model: "iMac 27\"", Prices: PriceTable{ScreenRepair: 30000, MotherboardRepair: 50000, SpeakerRepair: 10000, SoftwareRepair: 4500}},
			},
		},
		{
			Brand: "Dell",
			Models: []DeviceModel{
				{Model: "XPS 13", Prices: PriceTable{ScreenRepair: 18000, BatteryReplacement: 12000, KeyboardRepair: 8000, MotherboardRepair: 35000, SoftwareRepair: 3000}},
				{Model: "XPS 15", Prices: PriceTable{ScreenRepair: 22000, BatteryReplacement: 15000, KeyboardRepair: 10000, MotherboardRepair: 40000, SoftwareRepair: 3500}},
				{Model: "Inspiron 15", Prices: PriceTable{ScreenRepair: 15000, BatteryReplacement: 10000, KeyboardRepair: 6000, MotherboardRepair: 25000, SoftwareRepair: 2500}},
				{Model: "Latitude 14", Prices: PriceTable{ScreenRepair: 16000, BatteryReplacement: 11000, KeyboardRepair: 7000, MotherboardRepair: 28000, SoftwareRepair: 3000}},
				{Model: "Alienware m15", Prices: PriceTable{ScreenRepair: 25000, BatteryReplacement: 18000, KeyboardRepair: 12000, MotherboardRepair: 45000, SoftwareRepair: 4000}},
			},
		},
		{
			Brand: "HP",
			Models: []DeviceModel{
				{Model: "Pavilion 15", Prices: PriceTable{ScreenRepair: 14000, BatteryReplacement: 9000, KeyboardRepair: 5500, MotherboardRepair: 22000, SoftwareRepair: 2500}},
				{Model: "Envy 13", Prices: PriceTable{ScreenRepair: 16000, BatteryReplacement: 11000, KeyboardRepair: 7000, MotherboardRepair: 26000, SoftwareRepair: 3000}},
				{Model: "EliteBook 14", Prices: PriceTable{ScreenRepair: 18000, BatteryReplacement: 12000, KeyboardRepair: 8000, MotherboardRepair: 30000, SoftwareRepair: 3500}},
				{Model: "Spectre x360", Prices: PriceTable{ScreenRepair: 20000, BatteryReplacement: 14000, KeyboardRepair: 9000, MotherboardRepair: 35000, SoftwareRepair: 3500}},
				{Model: "Omen 15", Prices: PriceTable{ScreenRepair: 19000, BatteryReplacement: 13000, KeyboardRepair: 8500, MotherboardRepair: 32000, SoftwareRepair: 3000}},
			},
		},
		{
			Brand: "Lenovo",
			Models: []DeviceModel{
				{Model: "ThinkPad X1 Carbon", Prices: PriceTable{ScreenRepair: 20000, BatteryReplacement: 13000, KeyboardRepair: 8500, MotherboardRepair: 35000, SoftwareRepair: 3500}},
				{Model: "ThinkPad T14", Prices: PriceTable{ScreenRepair: 17000, BatteryReplacement: 11000, KeyboardRepair: 7500, MotherboardRepair: 28000, SoftwareRepair: 3000}},
				{Model: "IdeaPad 3", Prices: PriceTable{ScreenRepair: 12000, BatteryReplacement: 8000, KeyboardRepair: 5000, MotherboardRepair: 18000, SoftwareRepair: 2000}},
				{Model: "Legion 5", Prices: PriceTable{ScreenRepair: 18000, BatteryReplacement: 12000, KeyboardRepair: 8000, MotherboardRepair: 30000, SoftwareRepair: 3000}},
				{Model: "Yoga 7i", Prices: PriceTable{ScreenRepair: 19000, BatteryReplacement: 12500, KeyboardRepair: 8500, MotherboardRepair: 32000, SoftwareRepair: 3500}},
			},
		},
	},
	"tablet": {
		{
			Brand: "Apple",
			Models: []DeviceModel{
				{Model: "iPad (9th Gen)", Prices: PriceTable{ScreenRepair: 12000, BatteryReplacement: 8000, BackGlassRepair: 6000, SoftwareRepair: 3000}},
				{Model: "iPad (10th Gen)", Prices: PriceTable{ScreenRepair: 15000, BatteryReplacement: 9000, BackGlassRepair: 7000, SoftwareRepair: 3500}},
				{Model: "iPad Air (4th Gen)", Prices: PriceTable{ScreenRepair: 18000, BatteryReplacement: 11000, BackGlassRepair: 8000, SoftwareRepair: 4000}},
				{Model: "iPad Air (5th Gen)", Prices: PriceTable{ScreenRepair: 20000, BatteryReplacement: 12000, BackGlassRepair: 9000, SoftwareRepair: 4000}},
				{Model: "iPad Pro 11\" (3rd Gen)", Prices: PriceTable{ScreenRepair: 25000, BatteryReplacement: 15000, BackGlassRepair: 10000, SoftwareRepair: 5000}},
				{Model: "iPad Pro 11\" (4th Gen)", Prices: PriceTable{ScreenRepair: 28000, BatteryReplacement: 16000, BackGlassRepair: 11000, SoftwareRepair: 5000}},
				{Model: "iPad Pro 12.9\" (5th Gen)", Prices: PriceTable{ScreenRepair: 35000, BatteryReplacement: 20000, BackGlassRepair: 12000, SoftwareRepair: 6000}},
				{Model: "iPad Pro 12.9\" (6th Gen)", Prices: PriceTable{ScreenRepair: 40000, BatteryReplacement: 22000, BackGlassRepair: 14000, SoftwareRepair: 6000}},
				{Model: "iPad Mini (6th Gen)", Prices: PriceTable{ScreenRepair: 16000, BatteryReplacement: 10000, BackGlassRepair: 7500, SoftwareRepair: 3500}},
			},
		},
		{
			Brand: "Samsung",
			Models: []DeviceModel{
				{Model: "Galaxy Tab A8", Prices: PriceTable{ScreenRepair: 8000, BatteryReplacement: 6000, BackGlassRepair: 4000, SoftwareRepair: 2000}},
				{Model: "Galaxy Tab A9+", Prices: PriceTable{ScreenRepair: 10000, BatteryReplacement: 7000, BackGlassRepair: 4500, SoftwareRepair: 2500}},
				{Model: "Galaxy Tab S6 Lite", Prices: PriceTable{ScreenRepair: 12000, BatteryReplacement: 8000, BackGlassRepair: 5000, SoftwareRepair: 2500}},
				{Model: "Galaxy Tab S7", Prices: PriceTable{ScreenRepair: 15000, BatteryReplacement: 9000, BackGlassRepair: 6000, SoftwareRepair: 3000}},
				{Model: "Galaxy Tab S8", Prices: PriceTable{ScreenRepair: 18000, BatteryReplacement: 11000, BackGlassRepair: 7000, SoftwareRepair: 3500}},
				{Model: "Galaxy Tab S8+", Prices: PriceTable{ScreenRepair: 22000, BatteryReplacement: 13000, BackGlassRepair: 8000, SoftwareRepair: 4000}},
				{Model: "Galaxy Tab S8 Ultra", Prices: PriceTable{ScreenRepair: 28000, BatteryReplacement: 16000, BackGlassRepair: 10000, SoftwareRepair: 4500}},
				{Model: "Galaxy Tab S9", Prices: PriceTable{ScreenRepair: 20000, BatteryReplacement: 12000, BackGlassRepair: 7500, SoftwareRepair: 3500}},
				{Model: "Galaxy Tab S9+", Prices: PriceTable{ScreenRepair: 25000, BatteryReplacement: 14000, BackGlassRepair: 9000, SoftwareRepair: 4000}},
				{Model: "Galaxy Tab S9 Ultra", Prices: PriceTable{ScreenRepair: 32000, BatteryReplacement: 18000, BackGlassRepair: 11000, SoftwareRepair: 5000}},
			},
		},
		{
			Brand: "Microsoft",
			Models: []DeviceModel{
				{Model: "Surface Go 3", Prices: PriceTable{ScreenRepair: 14000, BatteryReplacement: 9000, KeyboardRepair: 6000, SoftwareRepair: 3000}},
				{Model: "Surface Pro 8", Prices: PriceTable{ScreenRepair: 20000, BatteryReplacement: 12000, KeyboardRepair: 8000, SoftwareRepair: 4000}},
				{Model: "Surface Pro 9", Prices: PriceTable{ScreenRepair: 22000, BatteryReplacement: 13000, KeyboardRepair: 8500, SoftwareRepair: 4500}},
				{Model: "Surface Laptop 4", Prices: PriceTable{ScreenRepair: 18000, BatteryReplacement: 11000, KeyboardRepair: 7500, SoftwareRepair: 3500}},
				{Model: "Surface Laptop 5", Prices: PriceTable{ScreenRepair: 20000, BatteryReplacement: 12000, KeyboardRepair: 8000, SoftwareRepair: 4000}},
			},
		},
	},
}
