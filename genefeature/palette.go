package genefeature

// Palette is cycled through to colour consecutive features.
var Palette = []string{
	"#A6CEE3", "#1F78B4", "#B2DF8A", "#33A02C", "#FB9A99", "#E31A1C", "#fDBF6F", "#FF7F00",
	"#CAB2D6", "#6A3D9A", "#FF33D3", "#B15928", "#0006FC", "#2FB0EC", "#F3D742", "#2E9CE1",
	"#273D63", "#980B92", "#BBB873", "#EEC678", "#47E10B", "#E3139B", "#151179", "#293948",
	"#5F6005", "#FE24BE", "#A7C36B", "#D454DD", "#A68E2D", "#DB5AAC", "#405425", "#A608E4",
	"#533551", "#367521", "#64B875", "#6DB011", "#F5DD11", "#8A8517", "#F8E541", "#2D2A50",
	"#AAC3CC", "#C5D840", "#B79619", "#BBB2FE", "#E37B03", "#AFBB3E", "#74A110", "#E9877E",
	"#973F28", "#AFCA57", "#6E5EDE", "#B95FC3", "#C10AC8", "#A59B67", "#624F98", "#57A6AF",
	"#2650FB", "#94AAD1", "#5C1662", "#B8A1A1", "#104DB7", "#C6CBEE", "#AA694D", "#9B67DA",
	"#8DE7BC", "#866D49", "#72CEDC", "#574B7C", "#CD4474", "#593A60", "#2A6BB7", "#286028",
	"#6965EB", "#14CB29", "#956709", "#EB6D76", "#7A9A21", "#692C3C", "#AABBB5", "#1989AE",
	"#D78DCC", "#C43AAA", "#BBC863", "#E55F9D", "#741B13", "#6A7675", "#221A53", "#1804EC",
	"#D61D88", "#1D50B3", "#CF0E24", "#D791A9", "#0892FE", "#F5A865", "#91EBC2", "#9F650D",
	"#1B0A0F", "#1E9E88", "#B42E38", "#9710C9",
}
