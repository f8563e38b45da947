package module

// PQT06 is the supplier invoice ledger. Columns follow database order.
var PQT06 = Config{
	ID:          "pqt06",
	Name:        "PQT06 Facturas",
	Subtitle:    "Consulta de facturas",
	Description: "Registro maestro de facturas de proveedores con estado de pago y control.",
	Icon:        "📄",

	RPCFunction:          "buscar_documentos_prod",
	Schema:               "cgoii-data-prod",
	TableName:            "PQT06_Facturas_Consulta_Master",
	FallbackSearchFields: []string{"proveedor", "documento_identidad", "empresa"},

	Columns: []Column{
		{Field: "id_registro", HeaderName: "ID", MinWidth: 80},
		{Field: "ctl_estado", HeaderName: "Ctl Estado", MinWidth: 100},
		{Field: "ctl_campos_actualizados", HeaderName: "Ctl Campos Actualiz.", MinWidth: 160},
		{Field: "ctl_fecha_evento", HeaderName: "Ctl Fecha Evento", MinWidth: 120},
		{Field: "empresa", HeaderName: "Empresa", MinWidth: 140},
		{Field: "estado", HeaderName: "Estado", MinWidth: 120},
		{Field: "id_estado", HeaderName: "ID Estado", MinWidth: 90},
		{Field: "metodo", HeaderName: "Método", MinWidth: 100},
		{Field: "recepcion", HeaderName: "Recepción", MinWidth: 110},
		{Field: "fecha_registro", HeaderName: "Fecha Registro", MinWidth: 120},
		{Field: "fecha_comp", HeaderName: "Fecha Comp.", MinWidth: 120},
		{Field: "fecha_venc", HeaderName: "Fecha Venc.", MinWidth: 120},
		{Field: "forma_pago", HeaderName: "Forma Pago", MinWidth: 110},
		{Field: "dias_pendientes", HeaderName: "Días Pend.", MinWidth: 100},
		{Field: "periodo", HeaderName: "Periodo", MinWidth: 90},
		{Field: "documento_identidad", HeaderName: "RUC/DNI", MinWidth: 120},
		{Field: "proveedor", HeaderName: "Proveedor", MinWidth: 200},
		{Field: "proyecto", HeaderName: "Proyecto", MinWidth: 120},
		{Field: "oc", HeaderName: "OC", MinWidth: 100},
		{Field: "cod_oc", HeaderName: "Cód. OC", MinWidth: 100},
		{Field: "unidad_negocio", HeaderName: "Unidad Negocio", MinWidth: 130},
		{Field: "id_proveedor", HeaderName: "ID Proveedor", MinWidth: 110},
		{Field: "tipo_documento", HeaderName: "Tipo Documento", MinWidth: 130},
		{Field: "estado_sunat", HeaderName: "Estado SUNAT", MinWidth: 120},
		{Field: "prefijo", HeaderName: "Prefijo", MinWidth: 80},
		{Field: "serie", HeaderName: "Serie", MinWidth: 80},
		{Field: "numero_correlativo", HeaderName: "Nro. Correlativo", MinWidth: 120},
		{Field: "moneda", HeaderName: "Moneda", MinWidth: 80},
		{Field: "total_original", HeaderName: "Total Original", MinWidth: 120},
		{Field: "pagado_original", HeaderName: "Pagado Original", MinWidth: 120},
		{Field: "financiado_original", HeaderName: "Financiado Orig.", MinWidth: 130},
		{Field: "letras_original", HeaderName: "Letras Original", MinWidth: 120},
		{Field: "fondo_garantia", HeaderName: "Fondo Garantía", MinWidth: 120},
		{Field: "carta_fianza", HeaderName: "Carta Fianza", MinWidth: 110},
		{Field: "otras_retenciones", HeaderName: "Otras Retenc.", MinWidth: 120},
		{Field: "total_financiado_5", HeaderName: "Total Financ. 5", MinWidth: 120},
		{Field: "deducciones", HeaderName: "Deducciones", MinWidth: 110},
		{Field: "pendiente_comp", HeaderName: "Pendiente Comp.", MinWidth: 130},
		{Field: "pendiente_deduccion", HeaderName: "Pendiente Deduc.", MinWidth: 130},
		{Field: "pendiente_letras", HeaderName: "Pendiente Letras", MinWidth: 130},
		{Field: "pend_total_soles_origen", HeaderName: "Pend. Total S/ Orig.", MinWidth: 150},
		{Field: "pend_total_dolares", HeaderName: "Pend. Total US$", MinWidth: 130},
		{Field: "soles_total", HeaderName: "S/ Total", MinWidth: 110},
		{Field: "soles_pagado", HeaderName: "S/ Pagado", MinWidth: 110},
		{Field: "soles_financiado", HeaderName: "S/ Financiado", MinWidth: 120},
		{Field: "soles_letras", HeaderName: "S/ Letras", MinWidth: 110},
		{Field: "soles_fondo_garantia", HeaderName: "S/ Fondo Garantía", MinWidth: 140},
		{Field: "soles_carta_fianza", HeaderName: "S/ Carta Fianza", MinWidth: 130},
		{Field: "soles_otras_retenciones", HeaderName: "S/ Otras Retenc.", MinWidth: 140},
		{Field: "soles_total_financiado_5", HeaderName: "S/ Total Financ. 5", MinWidth: 140},
		{Field: "soles_deducciones", HeaderName: "S/ Deducciones", MinWidth: 130},
		{Field: "soles_pendiente_comp", HeaderName: "S/ Pend. Comp.", MinWidth: 130},
		{Field: "soles_pendiente_deduccion", HeaderName: "S/ Pend. Deduc.", MinWidth: 140},
		{Field: "soles_pendiente_letras", HeaderName: "S/ Pend. Letras", MinWidth: 130},
		{Field: "soles_pend_total_final", HeaderName: "S/ Pend. Total Final", MinWidth: 150},
		{Field: "percepcion", HeaderName: "Percepción", MinWidth: 110},
		{Field: "metodo_percepcion", HeaderName: "Método Percepción", MinWidth: 140},
		{Field: "perc_emitida", HeaderName: "Perc. Emitida", MinWidth: 110},
		{Field: "periodo_1", HeaderName: "Periodo 1", MinWidth: 100},
		{Field: "correlativo_contable", HeaderName: "Correlativo Contable", MinWidth: 150},
		{Field: "suma_percepcion", HeaderName: "Suma Percepción", MinWidth: 130},
		{Field: "fecha_pago_real", HeaderName: "Fecha Pago Real", MinWidth: 130},
		{Field: "id_tc_cancelacion", HeaderName: "ID TC Cancelación", MinWidth: 140},
		{Field: "cuenta_cancelacion", HeaderName: "Cuenta Cancelación", MinWidth: 150},
		{Field: "corr_cancelacion", HeaderName: "Corr. Cancelación", MinWidth: 140},
		{Field: "cuenta_contable", HeaderName: "Cuenta Contable", MinWidth: 130},
		{Field: "descripcion_cuenta", HeaderName: "Descripción Cuenta", MinWidth: 160},
		{Field: "rubro", HeaderName: "Rubro", MinWidth: 100},
		{Field: "cod_prov", HeaderName: "Cód. Proveedor", MinWidth: 120},
		{Field: "id_moneda", HeaderName: "ID Moneda", MinWidth: 90},
		{Field: "tipo_cambio", HeaderName: "Tipo Cambio", MinWidth: 110},
		{Field: "total_local", HeaderName: "Total Local", MinWidth: 110},
		{Field: "total_extranjero", HeaderName: "Total Extranjero", MinWidth: 120},
		{Field: "id_contable", HeaderName: "ID Contable", MinWidth: 110},
		{Field: "usuario_registro", HeaderName: "Usuario Registro", MinWidth: 130},
		{Field: "observaciones", HeaderName: "Observaciones", MinWidth: 200},
		{Field: "empleado_rendir", HeaderName: "Empleado Rendir", MinWidth: 130},
		{Field: "id_empresa", HeaderName: "ID Empresa", MinWidth: 100},
		{Field: "sigla_moneda", HeaderName: "Sigla Moneda", MinWidth: 100},
		{Field: "nemonico", HeaderName: "Nemónico", MinWidth: 100},
		{Field: "cant_anexos", HeaderName: "Cant. Anexos", MinWidth: 100},
		{Field: "ind_validez_cpe", HeaderName: "Ind. Validez CPE", MinWidth: 130},
		{Field: "id_estado_sunat", HeaderName: "ID Estado SUNAT", MinWidth: 130},
		{Field: "fecha_doc_rel", HeaderName: "Fecha Doc. Rel.", MinWidth: 120},
		{Field: "tipo_doc_rel", HeaderName: "Tipo Doc. Rel.", MinWidth: 120},
		{Field: "serie_doc_rel", HeaderName: "Serie Doc. Rel.", MinWidth: 120},
		{Field: "nro_doc_rel", HeaderName: "Nro. Doc. Rel.", MinWidth: 120},
		{Field: "concatenar_factura", HeaderName: "Concatenar Factura", MinWidth: 150},
		{Field: "fd_oc_almacen", HeaderName: "FD OC Almacén", MinWidth: 120},
		{Field: "fd_etapa_n2_cod", HeaderName: "FD Etapa N2 Cód.", MinWidth: 130},
		{Field: "fd_oc_comprador", HeaderName: "FD OC Comprador", MinWidth: 140},
		{Field: "fd_etapa_n2", HeaderName: "FD Etapa N2", MinWidth: 120},
		{Field: "as_comentarios_procura", HeaderName: "AS Comentarios Procura", MinWidth: 180},
		{Field: "as_fee_no_valorizable", HeaderName: "AS Fee No Valorizable", MinWidth: 160},
		{Field: "as_bd_val_presentacion", HeaderName: "AS BD Val. Presentación", MinWidth: 170},
		{Field: "pqt_colegio", HeaderName: "PQT Colegio", MinWidth: 110},
	},
	DateFields: NewFieldSet(
		"ctl_fecha_evento", "recepcion", "fecha_registro", "fecha_comp", "fecha_venc",
		"fecha_pago_real", "as_bd_val_presentacion", "fecha_doc_rel",
	),
	AmountFields: NewFieldSet(
		"total_original", "pagado_original", "financiado_original", "letras_original",
		"fondo_garantia", "carta_fianza", "otras_retenciones", "total_financiado_5", "deducciones",
		"pendiente_comp", "pendiente_deduccion", "pendiente_letras", "pend_total_soles_origen",
		"pend_total_dolares", "soles_total", "soles_pagado", "soles_financiado", "soles_letras",
		"soles_fondo_garantia", "soles_carta_fianza", "soles_otras_retenciones",
		"soles_total_financiado_5", "soles_deducciones", "soles_pendiente_comp",
		"soles_pendiente_deduccion", "soles_pendiente_letras", "soles_pend_total_final",
		"percepcion", "perc_emitida", "suma_percepcion", "tipo_cambio", "total_local",
		"total_extranjero",
	),
	StatusField: "estado",
	PinnedField: "id_registro",

	RecommendedColumns: NewFieldSet(
		"id_registro", "ctl_estado", "ctl_campos_actualizados", "ctl_fecha_evento", "fecha_comp",
		"documento_identidad", "proveedor", "oc", "tipo_documento", "serie", "numero_correlativo",
		"moneda", "total_original", "pagado_original", "observaciones", "concatenar_factura",
		"fd_oc_almacen", "fd_etapa_n2_cod", "fd_oc_comprador", "fd_etapa_n2",
		"as_comentarios_procura", "as_fee_no_valorizable", "as_bd_val_presentacion", "pqt_colegio",
	),
	LocalStorageKey: "pqt06-column-visibility",

	SumField:          "total_original",
	SumLabel:          "Suma Total Original",
	SearchPlaceholder: "Buscar por proveedor, RUC, OC, serie-correlativo... (usa comas para combinar)",
}
