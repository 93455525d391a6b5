package httpapi

import "html/template"

var formPage = template.Must(template.New("form").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Pizza Order System</title>
<style>
body { font-family: sans-serif; max-width: 600px; margin: 2em auto; }
fieldset { display: inline-block; vertical-align: top; margin: 0 .5em 1em 0; }
.toppings label { display: inline-block; width: 8em; }
textarea { width: 100%; font-family: monospace; }
.buttons { text-align: center; margin-top: 1em; }
</style>
</head>
<body>
{{if .Error}}<dialog open role="alertdialog"><p><strong>Error</strong></p><p>{{.Error}}</p><form method="dialog"><button>OK</button></form></dialog>{{end}}
<form method="post" action="/order">
<fieldset>
<legend>Crust Type</legend>
{{range .Crusts}}<label><input type="radio" name="crust" value="{{.Value}}"{{if .Checked}} checked{{end}}> {{.Label}}</label>
{{end}}</fieldset>
<fieldset>
<legend>Size</legend>
<select name="size">
{{range .Sizes}}<option value="{{.Value}}"{{if .Checked}} selected{{end}}>{{.Label}}</option>
{{end}}</select>
</fieldset>
<fieldset class="toppings">
<legend>Toppings</legend>
{{range .Toppings}}<label><input type="checkbox" name="topping" value="{{.Value}}"{{if .Checked}} checked{{end}}> {{.Label}}</label>
{{end}}</fieldset>
<fieldset style="display:block">
<legend>Order Details</legend>
<textarea rows="10" cols="30" readonly>{{.ReceiptText}}</textarea>
{{if .ReceiptText}}<p><img src="/receipt/qrcode" alt="receipt QR code" width="128" height="128"></p>{{end}}
</fieldset>
<div class="buttons">
<button type="submit">Order</button>
<button type="submit" formaction="/clear">Clear</button>
<button type="submit" formaction="/quit" formmethod="get">Quit</button>
</div>
</form>
</body>
</html>
`))

var quitPage = template.Must(template.New("quit").Parse(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>Confirm Quit</title></head>
<body>
<form method="post" action="/quit">
<p>Are you sure you want to quit?</p>
<button type="submit" name="confirm" value="yes">Yes</button>
<button type="submit" name="confirm" value="no">No</button>
</form>
</body>
</html>
`))

var goodbyePage = template.Must(template.New("goodbye").Parse(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>Pizza Order System</title></head>
<body><p>Goodbye. You can close this window.</p></body>
</html>
`))

type option struct {
	Value   string
	Label   string
	Checked bool
}

type formView struct {
	Crusts      []option
	Sizes       []option
	Toppings    []option
	ReceiptText string
	Error       string
}
