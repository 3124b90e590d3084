package etl

// Columns of the saber_pro table, in insert order. The public export carries
// dozens more; the load keeps the ones the dashboard queries.
var columns = []string{
	"periodo",
	"estu_consecutivo",
	"estu_genero",
	"estu_inst_departamento",
	"inst_nombre_institucion",
	"estu_prgm_academico",
	"inst_origen",
	"estu_valormatriculauniversidad",
	"estu_horassemanatrabaja",
	"fami_estratovivienda",
	"fami_educacionpadre",
	"fami_educacionmadre",
	"fami_tieneinternet",
	"fami_tienecomputador",
	"estu_pagomatriculapropio",
	"estu_pagomatriculapadres",
	"estu_pagomatriculabeca",
	"estu_pagomatriculacredito",
	"mod_razona_cuantitat_punt",
	"mod_lectura_critica_punt",
	"mod_ingles_punt",
	"mod_competen_ciudada_punt",
	"mod_comuni_escrita_punt",
}

// scoreColumns load as REAL; blanks become NULL, never zero.
var scoreColumns = map[string]bool{
	"mod_razona_cuantitat_punt": true,
	"mod_lectura_critica_punt":  true,
	"mod_ingles_punt":           true,
	"mod_competen_ciudada_punt": true,
	"mod_comuni_escrita_punt":   true,
}

const createTableSQL = `
CREATE TABLE IF NOT EXISTS saber_pro (
	periodo TEXT,
	estu_consecutivo TEXT,
	estu_genero TEXT,
	estu_inst_departamento TEXT,
	inst_nombre_institucion TEXT,
	estu_prgm_academico TEXT,
	inst_origen TEXT,
	estu_valormatriculauniversidad TEXT,
	estu_horassemanatrabaja TEXT,
	fami_estratovivienda TEXT,
	fami_educacionpadre TEXT,
	fami_educacionmadre TEXT,
	fami_tieneinternet TEXT,
	fami_tienecomputador TEXT,
	estu_pagomatriculapropio TEXT,
	estu_pagomatriculapadres TEXT,
	estu_pagomatriculabeca TEXT,
	estu_pagomatriculacredito TEXT,
	mod_razona_cuantitat_punt REAL,
	mod_lectura_critica_punt REAL,
	mod_ingles_punt REAL,
	mod_competen_ciudada_punt REAL,
	mod_comuni_escrita_punt REAL
)`

var indexSQL = []string{
	"CREATE INDEX IF NOT EXISTS idx_periodo ON saber_pro(periodo)",
	"CREATE INDEX IF NOT EXISTS idx_genero ON saber_pro(estu_genero)",
	"CREATE INDEX IF NOT EXISTS idx_estrato ON saber_pro(fami_estratovivienda)",
	"CREATE INDEX IF NOT EXISTS idx_inst_origen ON saber_pro(inst_origen)",
}
