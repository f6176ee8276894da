package pdf

import (
	"github.com/gompdf/danfe/internal/format"
	"github.com/gompdf/danfe/internal/layout"
)

// Landscape A4: the receipt runs down the left edge and the frame spans
// 248mm from x=36.

func landscapeReceipt(c *canvas, s *session) {
	c.rect(16, 10, 17, 190)
	c.line(24.5, 10, 24.5, 160)
	c.line(16, 160, 33, 160)
	c.line(16, 54, 24.5, 54)
	c.dashedLine(34.5, 10, 34.5, 200, 0.5, 1)

	c.rotated(-90, 33, 10, func() {
		c.font("B", 5)
		c.moveTo(layout.At(33, 10))
		c.multiCell(150, 3, s.receipt, layout.AlignLeft)
		c.text(34, 20.5, "DATA DE RECEBIMENTO")
		c.text(79, 20.5, "IDENTIFICAÇÃO E ASSINATURA DO RECEBEDOR")
		c.text(201, 12, "NF-e")

		c.font("B", 8)
		c.text(186, 18, "Nº "+s.number)
		c.text(186, 23, "SÉRIE "+s.series)
	})
}

func landscapeIssuer(c *canvas, s *session) {
	y := s.emitY
	c.rect(36, y, 248, 38)
	c.line(146, y, 146, y+38)
	c.line(184, y, 184, y+38)
	c.line(36, y+24, 146, y+24)
	c.line(36, y+31, 284, y+31)
	c.line(86, y+31, 86, y+38)

	if s.logo {
		c.drawLogo(37, y+2, 15)
	}

	c.font("B", 10)
	c.moveTo(layout.At(55, y+2))
	c.multiCell(90, 5, s.emit("xNome"), layout.AlignCenter)

	c.font("B", 7)
	c.moveTo(layout.At(55, y+15))
	c.multiCell(90, 4, s.issuerAddress(), layout.AlignCenter)

	c.font("B", 12)
	c.text(158, y+5, "DANFE")
	c.font("", 7)
	c.text(152, y+9, "Documento Auxiliar da")
	c.text(152, y+12, "Nota Fiscal Eletrônica")
	c.text(152, y+16, "0 - Entrada")
	c.text(152, y+19, "1 - Saída")
	c.rect(170, y+14, 8, 6)
	c.font("B", 10)
	c.text(173, y+18, s.inv.Direction())

	c.font("B", 8)
	c.text(152, y+24, "Nº "+s.number)
	c.text(152, y+27, "SÉRIE "+s.series)
	c.text(156, y+30, s.pageLabel())

	c.font("", 5)
	c.text(185, y+2.5, "CONTROLE DO FISCO")
	c.barcode(s.key, 197.1, y+4, 9)

	c.rect(185, y+15, 98, 6)
	c.text(186, y+17.2, "CHAVE DE ACESSO")
	c.font("B", 7)
	c.text(205, y+20, format.AccessKey(s.key))

	c.font("", 8)
	c.moveTo(layout.At(185, y+23))
	c.multiCell(98, 3, consultText, layout.AlignLeft)

	c.font("", 5)
	c.text(37, y+26.1, "NATUREZA DA OPERAÇÃO")
	c.text(37, y+33.2, "INSCRIÇÃO ESTADUAL")
	c.text(87, y+33.2, "INSCRIÇÃO ESTADUAL DO SUBST. TRIB")
	c.text(147, y+33.2, "CNPJ")
	c.text(185, y+33.1, "PROTOCOLO DE AUTORIZAÇÃO DE USO")

	c.font("", 8)
	c.text(37, y+30, c.fit(s.ide("natOp"), 112))
	c.text(37, y+37.1, s.emit("IE"))
	c.text(87, y+37.1, s.emit("IEST"))
	c.text(147, y+37.1, format.CPFCNPJ(s.emit("CNPJ")))

	c.font("B", 7)
	c.moveTo(layout.At(184, y+34))
	c.cell(100, 5, s.protocol, layout.AlignCenter)

	if s.inv.IsHomologation() {
		c.watermark(204, 14)
	}
}

func landscapeRecipient(c *canvas, s *session) {
	y := s.emitY + 42
	c.font("B", 7)
	c.text(37, y-1, "DESTINATÁRIO/REMETENTE")
	c.rect(36, y, 248, 20)
	c.line(36, y+6.66, 284, y+6.66)
	c.line(36, y+13.32, 284, y+13.32)
	c.line(184, y, 184, y+6.66)
	c.line(242, y, 242, y+20)
	c.line(151, y+6.66, 151, y+13.33)
	c.line(204, y+6.66, 204, y+13.33)
	c.line(96, y+13.33, 96, y+20)
	c.line(141, y+13.33, 141, y+20)
	c.line(158, y+13.33, 158, y+20)

	c.font("", 5)
	c.text(37, y+2, "NOME/RAZÃO SOCIAL")
	c.text(185, y+2, "CNPJ/CPF")
	c.text(243, y+2, "DATA DE EMISSÃO")
	c.text(37, y+8.66, "ENDEREÇO")
	c.text(152, y+8.66, "BAIRRO/DISTRITO")
	c.text(205, y+8.66, "CEP")
	c.text(243, y+8.66, "DATA DE ENTRADA/SAÍDA")
	c.text(37, y+15.32, "MUNICÍPIO")
	c.text(97, y+15.32, "FONE/FAX")
	c.text(142, y+15.32, "UF")
	c.text(159, y+15.32, "INSCRIÇÃO ESTADUAL")
	c.text(243, y+15.32, "HORA DE ENTRADA/SAÍDA")

	issued, _ := format.Date(s.ide("dhEmi"))
	leftOn, leftAt := format.Date(s.ide("dhSaiEnt"))

	c.font("", 8)
	c.text(37, y+5.7, c.fit(s.recipientName(), 145))
	c.text(185, y+5.7, format.CPFCNPJ(s.inv.Recipient()))
	c.text(243, y+5.7, issued)
	c.text(37, y+12.4, c.fit(s.dest("xLgr")+", "+s.dest("nro"), 86))
	c.text(152, y+12.4, c.fit(s.dest("xBairro"), 50))
	c.text(205, y+12.4, s.dest("CEP"))
	c.text(243, y+12.4, leftOn)
	c.text(37, y+19.1, c.fit(s.dest("xMun"), 50))
	c.text(97, y+19.1, s.dest("fone"))
	c.text(142, y+19.1, s.dest("UF"))
	c.text(159, y+19.1, s.dest("IE"))
	c.text(243, y+19.1, leftAt)
}

func landscapeBilling(c *canvas, s *session) {
	y := s.emitY + 66
	c.font("B", 7)
	c.text(37, y-1, "FATURA")
	c.rect(36, y, 248, 13)
	c.line(98, y, 98, y+13)
	c.line(160, y, 160, y+13)
	c.line(222, y, 222, y+13)
	c.line(222, y+6.5, 284, y+6.5)

	c.font("", 8)
	c.text(223, y+5.7, s.inv.Observation("CodVendedor"))
	c.text(223, y+12.24, c.fit(s.inv.Observation("NomeVendedor"), 60))
	c.font("", 5)
	c.text(223, y+2.3, "CÓDIGO VENDEDOR")
	c.text(223, y+8.6, "NOME VENDEDOR")

	drawDuplicates(c, s.inv.Duplicates(), layout.At(36, y), [3]float64{19, 22, 21})
}

func landscapeTaxes(c *canvas, s *session) {
	y := s.emitY + 83
	c.font("B", 7)
	c.text(37, y-1, "CÁLCULO DO IMPOSTO")
	c.rect(36, y, 248, 13)
	c.line(36, y+6.5, 284, y+6.5)
	c.line(86, y, 86, y+6.5)
	c.line(137, y, 137, y+6.5)
	c.line(187, y, 187, y+6.5)
	c.line(237, y, 237, y+13)
	c.line(66, y+6.5, 66, y+13)
	c.line(95, y+6.5, 95, y+13)
	c.line(125, y+6.5, 125, y+13)
	c.line(165, y+6.5, 165, y+13)
	c.line(195, y+6.5, 195, y+13)

	c.font("", 5)
	c.text(37, y+2, "BASE DE CÁLCULO DO ICMS")
	c.text(87, y+2, "VALOR DO ICMS")
	c.text(138, y+2, "BASE DE CÁLCULO DO ICMS ST")
	c.text(188, y+2, "VALOR DO ICMS ST")
	c.text(238, y+2, "VALOR TOTAL DOS PRODUTOS")
	c.text(37, y+8.5, "VALOR DO FRETE")
	c.text(67, y+8.5, "VALOR DO SEGURO")
	c.text(96, y+8.5, "DESCONTO")
	c.text(126, y+8.5, "OUTRAS DESP. ACESSÓRIAS")
	c.text(166, y+8.5, "VALOR DO IPI")
	c.text(196, y+8.5, "VALOR APROX. TRIBUTOS")
	c.text(238, y+8.5, "VALOR TOTAL DA NOTA")

	c.font("", 8)
	s.totalsRow(c, layout.At(36, y+2.7), []float64{50, 51, 50, 50, 47}, firstTotals)
	s.totalsRow(c, layout.At(36, y+9.2), []float64{30, 29, 30, 40, 30, 42, 47}, secondTotals)
}

func landscapeTransport(c *canvas, s *session) {
	y := s.emitY + 100
	c.font("B", 7)
	c.text(37, y-1, "TRANSPORTADOR/VOLUMES TRANSPORTADOS")
	c.rect(36, y, 248, 20)
	c.line(36, y+6.66, 284, y+6.66)
	c.line(36, y+13.3, 284, y+13.3)
	c.line(121, y, 121, y+6.66)
	c.line(146, y, 146, y+13.3)
	c.line(183, y, 183, y+6.66)
	c.line(214, y, 214, y+20)
	c.line(226, y, 226, y+13.3)
	c.line(71, y+13.3, 71, y+20)
	c.line(121, y+13.3, 121, y+20)
	c.line(170, y+13.3, 170, y+20)
	c.line(248, y+13.3, 248, y+20)

	c.font("", 5)
	c.text(37, y+2, "RAZÃO SOCIAL")
	c.text(122, y+2, "FRETE POR CONTA")
	c.text(147, y+2, "CÓDIGO ANTT")
	c.text(184, y+2, "PLACA DO VEÍCULO")
	c.text(215, y+2, "UF")
	c.text(227, y+2, "CNPJ/CPF")
	c.text(37, y+8.7, "ENDEREÇO")
	c.text(147, y+8.7, "MUNICÍPIO")
	c.text(215, y+8.7, "UF")
	c.text(227, y+8.7, "INSCRIÇÃO ESTADUAL")
	c.text(37, y+15.4, "QUANTIDADE")
	c.text(72, y+15.4, "ESPÉCIE")
	c.text(122, y+15.4, "MARCA")
	c.text(171, y+15.4, "NUMERAÇÃO")
	c.text(215, y+15.4, "PESO BRUTO")
	c.text(249, y+15.4, "PESO LÍQUIDO")

	c.font("", 8)
	c.text(37, y+5.7, c.fit(s.carrier("xNome"), 85))
	c.text(122, y+5.7, format.Freight(s.inv.Transp.Text("modFrete")))
	c.text(147, y+5.7, s.vehicle("RNTC"))
	c.text(184, y+5.7, s.vehicle("placa"))
	c.text(215, y+5.7, s.vehicle("UF"))
	c.text(227, y+5.7, s.carrierDocument())
	c.text(37, y+12.5, c.fit(s.carrier("xEnder"), 110))
	c.text(147, y+12.5, c.fit(s.carrier("xMun"), 51))
	c.text(215, y+12.5, s.carrier("UF"))
	c.text(227, y+12.5, s.carrier("IE"))
	c.text(37, y+19.2, s.volume("qVol"))
	c.text(72, y+19.2, s.volume("esp"))
	c.text(122, y+19.2, s.volume("marca"))
	c.text(171, y+19.2, s.volume("nVol"))

	c.moveTo(layout.At(214, y+16.7))
	c.cell(34, 3, format.Number(s.volume("pesoB"), 3), layout.AlignRight)
	c.cell(36, 3, format.Number(s.volume("pesoL"), 3), layout.AlignRight)
}

func landscapeAdditional(c *canvas, s *session) {
	y := s.geo.AdditionalY
	c.font("B", 7)
	c.text(37, y-1, "DADOS ADICIONAIS")
	c.font("", 5)
	c.text(37, y+2.5, "INFORMAÇÕES COMPLEMENTARES")
	c.text(161, y+2.5, "RESERVADO AO FISCO")
	c.rect(36, y, 248, s.geo.AdditionalHeight)
	c.line(160, y, 160, y+s.geo.AdditionalHeight)

	if obs := s.observations(); obs != "" {
		c.font("", 6)
		c.moveTo(layout.At(36, y+4))
		c.multiCell(120, 3, c.fit(obs, 910), layout.AlignLeft)
	}
}
