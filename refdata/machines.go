package refdata

import "github.com/ooxo-pl/machines-data/models"

// Verified production data per manufacturer and equipment class. Year ranges
// and engine designations match official specification sheets; year_to nil
// means the model is still in production.

var caterpillarExcavators = []models.VerifiedMachine{
	{Model: "301.7", Type: "mini_excavator", YearFrom: year(2014), WeightKg: 1750, Engine: "Cat C1.1"},
	{Model: "305 CR", Type: "mini_excavator", YearFrom: year(2018), WeightKg: 5400, Engine: "Cat C2.4"},
	{Model: "308 CR", Type: "mini_excavator", YearFrom: year(2018), WeightKg: 8500, Engine: "Cat C3.3"},
	{Model: "313", Type: "excavator", YearFrom: year(2020), WeightKg: 14000, Engine: "Cat C3.6"},
	{Model: "320", Type: "excavator", YearFrom: year(2017), WeightKg: 21000, Engine: "Cat C4.4"},
	{Model: "320D", Type: "excavator", YearFrom: year(2007), YearTo: year(2012), WeightKg: 20400, Engine: "Cat C6.4"},
	{Model: "320D2", Type: "excavator", YearFrom: year(2014), YearTo: year(2017), WeightKg: 20500, Engine: "Cat C4.4"},
	{Model: "320E", Type: "excavator", YearFrom: year(2012), YearTo: year(2017), WeightKg: 20800, Engine: "Cat C6.4"},
	{Model: "323", Type: "excavator", YearFrom: year(2017), WeightKg: 23500, Engine: "Cat C4.4"},
	{Model: "330", Type: "excavator", YearFrom: year(2017), WeightKg: 30000, Engine: "Cat C7.1"},
	{Model: "336", Type: "excavator", YearFrom: year(2017), WeightKg: 36000, Engine: "Cat C9.3"},
	{Model: "349", Type: "excavator", YearFrom: year(2017), WeightKg: 49000, Engine: "Cat C13"},
	{Model: "374", Type: "excavator", YearFrom: year(2017), WeightKg: 74000, Engine: "Cat C15"},
	{Model: "390", Type: "excavator", YearFrom: year(2019), WeightKg: 90000, Engine: "Cat C18"},
}

var caterpillarWheelLoaders = []models.VerifiedMachine{
	{Model: "906M", Type: "wheel_loader", YearFrom: year(2015), WeightKg: 5500, Engine: "Cat C3.3"},
	{Model: "926M", Type: "wheel_loader", YearFrom: year(2014), WeightKg: 12500, Engine: "Cat C7.1"},
	{Model: "950H", Type: "wheel_loader", YearFrom: year(2005), YearTo: year(2015), WeightKg: 18000, Engine: "Cat C7"},
	{Model: "950M", Type: "wheel_loader", YearFrom: year(2014), WeightKg: 18500, Engine: "Cat C7.1"},
	{Model: "966H", Type: "wheel_loader", YearFrom: year(2005), YearTo: year(2015), WeightKg: 23500, Engine: "Cat C11"},
	{Model: "966M", Type: "wheel_loader", YearFrom: year(2014), WeightKg: 24000, Engine: "Cat C9.3"},
	{Model: "980M", Type: "wheel_loader", YearFrom: year(2014), WeightKg: 33000, Engine: "Cat C13"},
	{Model: "988K", Type: "wheel_loader", YearFrom: year(2015), WeightKg: 50000, Engine: "Cat C18"},
}

var caterpillarDozers = []models.VerifiedMachine{
	{Model: "D4K2", Type: "dozer", YearFrom: year(2014), WeightKg: 9500, Engine: "Cat C4.4"},
	{Model: "D6", Type: "dozer", YearFrom: year(2019), WeightKg: 20000, Engine: "Cat C9.3"},
	{Model: "D6T", Type: "dozer", YearFrom: year(2005), YearTo: year(2019), WeightKg: 19500, Engine: "Cat C9.3"},
	{Model: "D7", Type: "dozer", YearFrom: year(2019), WeightKg: 28000, Engine: "Cat C9.3"},
	{Model: "D8T", Type: "dozer", YearFrom: year(2005), YearTo: year(2019), WeightKg: 38000, Engine: "Cat C15"},
	{Model: "D9T", Type: "dozer", YearFrom: year(2005), WeightKg: 49000, Engine: "Cat C18"},
	{Model: "D11", Type: "dozer", YearFrom: year(2019), WeightKg: 105000, Engine: "Cat C32"},
}

var komatsuExcavators = []models.VerifiedMachine{
	{Model: "PC26MR-3", Type: "mini_excavator", YearFrom: year(2012), WeightKg: 2700, Engine: "Yanmar 3TNV82A"},
	{Model: "PC55MR-5", Type: "mini_excavator", YearFrom: year(2018), WeightKg: 5500, Engine: "Yanmar 4TNV98"},
	{Model: "PC88MR-10", Type: "excavator", YearFrom: year(2016), WeightKg: 8800, Engine: "Komatsu SAA4D95LE-6"},
	{Model: "PC130-11", Type: "excavator", YearFrom: year(2019), WeightKg: 13500, Engine: "Komatsu SAA4D95LE-7"},
	{Model: "PC200-8", Type: "excavator", YearFrom: year(2008), YearTo: year(2018), WeightKg: 20000, Engine: "Komatsu SAA6D107E-1"},
	{Model: "PC200-11", Type: "excavator", YearFrom: year(2020), WeightKg: 21000, Engine: "Komatsu SAA6D107E-3"},
	{Model: "PC210-11", Type: "excavator", YearFrom: year(2020), WeightKg: 22000, Engine: "Komatsu SAA6D107E-3"},
	{Model: "PC290LC-11", Type: "excavator", YearFrom: year(2019), WeightKg: 29500, Engine: "Komatsu SAA6D114E-6"},
	{Model: "PC300-8", Type: "excavator", YearFrom: year(2008), YearTo: year(2018), WeightKg: 30000, Engine: "Komatsu SAA6D114E-3"},
	{Model: "PC350-11", Type: "excavator", YearFrom: year(2020), WeightKg: 36000, Engine: "Komatsu SAA6D114E-6"},
	{Model: "PC490LC-11", Type: "excavator", YearFrom: year(2019), WeightKg: 49000, Engine: "Komatsu SAA6D125E-7"},
	{Model: "PC800LC-8", Type: "excavator", YearFrom: year(2010), WeightKg: 80000, Engine: "Komatsu SAA12V140E-3"},
}

var komatsuWheelLoaders = []models.VerifiedMachine{
	{Model: "WA100M-8", Type: "wheel_loader", YearFrom: year(2018), WeightKg: 7000, Engine: "Komatsu SAA4D95LE-6"},
	{Model: "WA270-8", Type: "wheel_loader", YearFrom: year(2015), WeightKg: 13000, Engine: "Komatsu SAA6D107E-2"},
	{Model: "WA320-8", Type: "wheel_loader", YearFrom: year(2015), WeightKg: 15500, Engine: "Komatsu SAA6D107E-2"},
	{Model: "WA380-8", Type: "wheel_loader", YearFrom: year(2015), WeightKg: 19000, Engine: "Komatsu SAA6D114E-6"},
	{Model: "WA470-8", Type: "wheel_loader", YearFrom: year(2015), WeightKg: 25000, Engine: "Komatsu SAA6D125E-7"},
	{Model: "WA500-8", Type: "wheel_loader", YearFrom: year(2015), WeightKg: 33000, Engine: "Komatsu SAA6D140E-7"},
}

var komatsuDozers = []models.VerifiedMachine{
	{Model: "D37PX-24", Type: "dozer", YearFrom: year(2018), WeightKg: 8500, Engine: "Komatsu SAA4D95LE-6"},
	{Model: "D61PX-24", Type: "dozer", YearFrom: year(2018), WeightKg: 17500, Engine: "Komatsu SAA6D107E-2"},
	{Model: "D65PX-18", Type: "dozer", YearFrom: year(2015), WeightKg: 21000, Engine: "Komatsu SAA6D114E-6"},
	{Model: "D85PX-18", Type: "dozer", YearFrom: year(2015), WeightKg: 27000, Engine: "Komatsu SAA6D125E-7"},
	{Model: "D155AX-8", Type: "dozer", YearFrom: year(2015), WeightKg: 40000, Engine: "Komatsu SAA6D140E-7"},
	{Model: "D375A-8", Type: "dozer", YearFrom: year(2015), WeightKg: 72000, Engine: "Komatsu SAA12V140E-3"},
}

var hitachiExcavators = []models.VerifiedMachine{
	{Model: "ZX26U-6", Type: "mini_excavator", YearFrom: year(2019), WeightKg: 2700, Engine: "Yanmar 3TNV80F"},
	{Model: "ZX55U-6", Type: "mini_excavator", YearFrom: year(2019), WeightKg: 5500, Engine: "Yanmar 4TNV98"},
	{Model: "ZX85USB-6", Type: "excavator", YearFrom: year(2019), WeightKg: 8500, Engine: "Isuzu 4LE2X"},
	{Model: "ZX130-7", Type: "excavator", YearFrom: year(2020), WeightKg: 13500, Engine: "Isuzu 4HK1X"},
	{Model: "ZX200-6", Type: "excavator", YearFrom: year(2015), YearTo: year(2020), WeightKg: 20000, Engine: "Isuzu 4HK1X"},
	{Model: "ZX200-7", Type: "excavator", YearFrom: year(2020), WeightKg: 20500, Engine: "Isuzu 4HK1X"},
	{Model: "ZX300LC-7", Type: "excavator", YearFrom: year(2020), WeightKg: 30500, Engine: "Isuzu 6HK1X"},
	{Model: "ZX350LC-7", Type: "excavator", YearFrom: year(2020), WeightKg: 35500, Engine: "Isuzu 6WG1X"},
	{Model: "ZX490LCH-7", Type: "excavator", YearFrom: year(2020), WeightKg: 49500, Engine: "Isuzu 6WG1X"},
	{Model: "ZX870LC-6", Type: "excavator", YearFrom: year(2015), WeightKg: 87000, Engine: "Isuzu 6WG1X"},
}

var hitachiWheelLoaders = []models.VerifiedMachine{
	{Model: "ZW140-6", Type: "wheel_loader", YearFrom: year(2015), WeightKg: 10000, Engine: "Isuzu 4HK1X"},
	{Model: "ZW220-6", Type: "wheel_loader", YearFrom: year(2015), WeightKg: 16000, Engine: "Isuzu 6HK1X"},
	{Model: "ZW310-6", Type: "wheel_loader", YearFrom: year(2015), WeightKg: 22000, Engine: "Isuzu 6WG1X"},
	{Model: "ZW370-6", Type: "wheel_loader", YearFrom: year(2015), WeightKg: 27000, Engine: "Isuzu 6WG1X"},
}

var volvoExcavators = []models.VerifiedMachine{
	{Model: "EC18E", Type: "mini_excavator", YearFrom: year(2018), WeightKg: 1800, Engine: "Volvo D0.9A"},
	{Model: "EC55E", Type: "mini_excavator", YearFrom: year(2018), WeightKg: 5500, Engine: "Volvo D2.6A"},
	{Model: "EC140E", Type: "excavator", YearFrom: year(2018), WeightKg: 14500, Engine: "Volvo D4J"},
	{Model: "EC200E", Type: "excavator", YearFrom: year(2018), WeightKg: 20500, Engine: "Volvo D5J"},
	{Model: "EC210", Type: "excavator", YearFrom: year(2014), YearTo: year(2018), WeightKg: 21000, Engine: "Volvo D6E"},
	{Model: "EC220E", Type: "excavator", YearFrom: year(2018), WeightKg: 22500, Engine: "Volvo D6J"},
	{Model: "EC300E", Type: "excavator", YearFrom: year(2018), WeightKg: 30500, Engine: "Volvo D8J"},
	{Model: "EC380E", Type: "excavator", YearFrom: year(2018), WeightKg: 38500, Engine: "Volvo D11J"},
	{Model: "EC480E", Type: "excavator", YearFrom: year(2018), WeightKg: 49000, Engine: "Volvo D13J"},
	{Model: "EC750E", Type: "excavator", YearFrom: year(2018), WeightKg: 75000, Engine: "Volvo D16J"},
}

var volvoWheelLoaders = []models.VerifiedMachine{
	{Model: "L25H", Type: "wheel_loader", YearFrom: year(2018), WeightKg: 5500, Engine: "Volvo D3.4A"},
	{Model: "L60H", Type: "wheel_loader", YearFrom: year(2015), WeightKg: 10500, Engine: "Volvo D6J"},
	{Model: "L90", Type: "wheel_loader", YearFrom: year(2005), YearTo: year(2015), WeightKg: 15000, Engine: "Volvo D7E"},
	{Model: "L90H", Type: "wheel_loader", YearFrom: year(2015), WeightKg: 15500, Engine: "Volvo D8J"},
	{Model: "L120H", Type: "wheel_loader", YearFrom: year(2015), WeightKg: 21000, Engine: "Volvo D11J"},
	{Model: "L150H", Type: "wheel_loader", YearFrom: year(2015), WeightKg: 25000, Engine: "Volvo D11J"},
	{Model: "L220H", Type: "wheel_loader", YearFrom: year(2015), WeightKg: 35000, Engine: "Volvo D13J"},
	{Model: "L350H", Type: "wheel_loader", YearFrom: year(2015), WeightKg: 55000, Engine: "Volvo D16J"},
}

var jcbExcavators = []models.VerifiedMachine{
	{Model: "8018 CTS", Type: "mini_excavator", YearFrom: year(2015), WeightKg: 1800, Engine: "Perkins 403D-15"},
	{Model: "8030 ZTS", Type: "mini_excavator", YearFrom: year(2015), WeightKg: 3200, Engine: "Perkins 403J-17"},
	{Model: "55Z-1", Type: "mini_excavator", YearFrom: year(2018), WeightKg: 5500, Engine: "JCB by Kohler"},
	{Model: "86C-2", Type: "excavator", YearFrom: year(2018), WeightKg: 8600, Engine: "JCB Dieselmax"},
	{Model: "131X", Type: "excavator", YearFrom: year(2020), WeightKg: 13500, Engine: "JCB Dieselmax"},
	{Model: "JS130", Type: "excavator", YearFrom: year(2010), YearTo: year(2020), WeightKg: 13000, Engine: "Isuzu 4HK1X"},
	{Model: "JS200", Type: "excavator", YearFrom: year(2010), YearTo: year(2020), WeightKg: 20500, Engine: "Isuzu 4HK1X"},
	{Model: "220X", Type: "excavator", YearFrom: year(2020), WeightKg: 22000, Engine: "JCB Dieselmax"},
	{Model: "JS330", Type: "excavator", YearFrom: year(2010), YearTo: year(2020), WeightKg: 33500, Engine: "Isuzu 6WG1X"},
	{Model: "JS500", Type: "excavator", YearFrom: year(2010), WeightKg: 50000, Engine: "MTU 6R1000"},
}

var jcbBackhoeLoaders = []models.VerifiedMachine{
	{Model: "1CX", Type: "backhoe_loader", YearFrom: year(2010), WeightKg: 2500, Engine: "Perkins 404D-22"},
	{Model: "3CX", Type: "backhoe_loader", YearFrom: year(1980), WeightKg: 8000, Engine: "JCB Dieselmax"},
	{Model: "3CX Compact", Type: "backhoe_loader", YearFrom: year(2015), WeightKg: 6500, Engine: "JCB Dieselmax"},
	{Model: "4CX", Type: "backhoe_loader", YearFrom: year(1992), WeightKg: 9500, Engine: "JCB Dieselmax"},
	{Model: "5CX", Type: "backhoe_loader", YearFrom: year(2015), WeightKg: 11000, Engine: "JCB Dieselmax"},
}

var jcbTelehandlers = []models.VerifiedMachine{
	{Model: "525-60", Type: "telehandler", YearFrom: year(2015), WeightKg: 5500, Engine: "JCB Dieselmax"},
	{Model: "535-95", Type: "telehandler", YearFrom: year(2015), WeightKg: 9500, Engine: "JCB Dieselmax"},
	{Model: "540-140", Type: "telehandler", YearFrom: year(2015), WeightKg: 11000, Engine: "JCB Dieselmax"},
	{Model: "560-80", Type: "telehandler", YearFrom: year(2015), WeightKg: 12000, Engine: "JCB Dieselmax"},
}

var doosanExcavators = []models.VerifiedMachine{
	{Model: "DX27Z", Type: "mini_excavator", YearFrom: year(2018), WeightKg: 2800, Engine: "Yanmar 3TNV82A"},
	{Model: "DX55-7", Type: "mini_excavator", YearFrom: year(2020), WeightKg: 5600, Engine: "Yanmar 4TNV98"},
	{Model: "DX140LC-7", Type: "excavator", YearFrom: year(2020), WeightKg: 14500, Engine: "Doosan DL06P"},
	{Model: "DX225-5", Type: "excavator", YearFrom: year(2015), YearTo: year(2020), WeightKg: 22500, Engine: "Doosan DL06"},
	{Model: "DX225LC-7", Type: "excavator", YearFrom: year(2020), WeightKg: 23000, Engine: "Doosan DL06P"},
	{Model: "DX300LC-7", Type: "excavator", YearFrom: year(2020), WeightKg: 30500, Engine: "Doosan DL08P"},
	{Model: "DX380LC-7", Type: "excavator", YearFrom: year(2020), WeightKg: 38500, Engine: "Scania DC09"},
	{Model: "DX490LC-7", Type: "excavator", YearFrom: year(2020), WeightKg: 49500, Engine: "Scania DC13"},
	{Model: "DX800LC-7", Type: "excavator", YearFrom: year(2020), WeightKg: 80000, Engine: "Scania DC16"},
}

var doosanWheelLoaders = []models.VerifiedMachine{
	{Model: "DL250-5", Type: "wheel_loader", YearFrom: year(2015), WeightKg: 14000, Engine: "Doosan DL06"},
	{Model: "DL300-5", Type: "wheel_loader", YearFrom: year(2015), WeightKg: 17500, Engine: "Doosan DL08"},
	{Model: "DL420-5", Type: "wheel_loader", YearFrom: year(2015), WeightKg: 24000, Engine: "Scania DC09"},
	{Model: "DL550-5", Type: "wheel_loader", YearFrom: year(2015), WeightKg: 33000, Engine: "Scania DC13"},
}

var liebherrExcavators = []models.VerifiedMachine{
	{Model: "A918 Compact", Type: "wheeled_excavator", YearFrom: year(2015), WeightKg: 18500, Engine: "Liebherr D934"},
	{Model: "A920", Type: "wheeled_excavator", YearFrom: year(2015), WeightKg: 20500, Engine: "Liebherr D934"},
	{Model: "R914 Compact", Type: "excavator", YearFrom: year(2015), WeightKg: 14500, Engine: "Liebherr D924"},
	{Model: "R922", Type: "excavator", YearFrom: year(2015), WeightKg: 22500, Engine: "Liebherr D934"},
	{Model: "R930", Type: "excavator", YearFrom: year(2015), WeightKg: 30500, Engine: "Liebherr D936"},
	{Model: "R945", Type: "excavator", YearFrom: year(2015), WeightKg: 45000, Engine: "Liebherr D946"},
	{Model: "R960", Type: "excavator", YearFrom: year(2015), WeightKg: 60000, Engine: "Liebherr D9508"},
	{Model: "R976", Type: "excavator", YearFrom: year(2015), WeightKg: 100000, Engine: "Liebherr D9512"},
	{Model: "R9200", Type: "mining_excavator", YearFrom: year(2015), WeightKg: 200000, Engine: "Cummins QSK50"},
}

var liebherrWheelLoaders = []models.VerifiedMachine{
	{Model: "L509 Stereo", Type: "wheel_loader", YearFrom: year(2015), WeightKg: 7000, Engine: "Liebherr D924"},
	{Model: "L538", Type: "wheel_loader", YearFrom: year(2015), WeightKg: 17500, Engine: "Liebherr D936"},
	{Model: "L556", Type: "wheel_loader", YearFrom: year(2015), WeightKg: 25000, Engine: "Liebherr D946"},
	{Model: "L580", Type: "wheel_loader", YearFrom: year(2015), WeightKg: 35000, Engine: "Liebherr D9508"},
}

var kobelcoExcavators = []models.VerifiedMachine{
	{Model: "SK17SR-5", Type: "mini_excavator", YearFrom: year(2018), WeightKg: 1700, Engine: "Yanmar 3TNV70"},
	{Model: "SK55SRX-6", Type: "mini_excavator", YearFrom: year(2018), WeightKg: 5500, Engine: "Yanmar 4TNV98"},
	{Model: "SK140SRLC-7", Type: "excavator", YearFrom: year(2020), WeightKg: 14500, Engine: "Isuzu 4HK1X"},
	{Model: "SK210LC-10", Type: "excavator", YearFrom: year(2018), WeightKg: 21500, Engine: "Hino J05E"},
	{Model: "SK260LC-10", Type: "excavator", YearFrom: year(2018), WeightKg: 26500, Engine: "Hino J08E"},
	{Model: "SK350LC-10", Type: "excavator", YearFrom: year(2018), WeightKg: 35500, Engine: "Hino J08E"},
	{Model: "SK500LC-10", Type: "excavator", YearFrom: year(2018), WeightKg: 50500, Engine: "Hino A09C"},
	{Model: "SK850LC-10E", Type: "excavator", YearFrom: year(2018), WeightKg: 85000, Engine: "Hino E13C"},
}

var caseExcavators = []models.VerifiedMachine{
	{Model: "CX17C", Type: "mini_excavator", YearFrom: year(2018), WeightKg: 1700, Engine: "Yanmar 3TNV70"},
	{Model: "CX57C", Type: "mini_excavator", YearFrom: year(2018), WeightKg: 5700, Engine: "Yanmar 4TNV98"},
	{Model: "CX130D", Type: "excavator", YearFrom: year(2018), WeightKg: 13500, Engine: "FPT F34"},
	{Model: "CX210D", Type: "excavator", YearFrom: year(2018), WeightKg: 21500, Engine: "FPT F4HFE613S"},
	{Model: "CX250D", Type: "excavator", YearFrom: year(2018), WeightKg: 25500, Engine: "FPT F4HFE613S"},
	{Model: "CX350D", Type: "excavator", YearFrom: year(2018), WeightKg: 35500, Engine: "FPT F4HFE613T"},
	{Model: "CX490D", Type: "excavator", YearFrom: year(2018), WeightKg: 49500, Engine: "FPT Cursor 9"},
	{Model: "CX750D", Type: "excavator", YearFrom: year(2018), WeightKg: 75000, Engine: "FPT Cursor 13"},
}

var groups = []machineGroup{
	{"CATERPILLAR", caterpillarExcavators},
	{"CATERPILLAR", caterpillarWheelLoaders},
	{"CATERPILLAR", caterpillarDozers},
	{"KOMATSU", komatsuExcavators},
	{"KOMATSU", komatsuWheelLoaders},
	{"KOMATSU", komatsuDozers},
	{"HITACHI", hitachiExcavators},
	{"HITACHI", hitachiWheelLoaders},
	{"VOLVO", volvoExcavators},
	{"VOLVO", volvoWheelLoaders},
	{"JCB", jcbExcavators},
	{"JCB", jcbBackhoeLoaders},
	{"JCB", jcbTelehandlers},
	{"DOOSAN", doosanExcavators},
	{"DOOSAN", doosanWheelLoaders},
	{"LIEBHERR", liebherrExcavators},
	{"LIEBHERR", liebherrWheelLoaders},
	{"KOBELCO", kobelcoExcavators},
	{"CASE", caseExcavators},
}
