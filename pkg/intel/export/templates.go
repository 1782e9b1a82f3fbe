package export

import "html/template"

var (
	salesTemplate   = template.Must(template.New("sales").Parse(salesHTML))
	productTemplate = template.Must(template.New("product").Parse(productHTML))
	gtmTemplate     = template.Must(template.New("gtm").Parse(gtmHTML))
	fullTemplate    = template.Must(template.New("full").Parse(fullHTML))
)

const salesHTML = `<!DOCTYPE html>
<html>
<head>
  <title>{{.Product}} Sales Team Battle Cards</title>
  <style>
    body { font-family: Arial, sans-serif; margin: 0; padding: 20px; background: #f5f5f5; }
    .header { background: linear-gradient(135deg, #059669, #0d9488); color: white; padding: 30px; text-align: center; margin-bottom: 30px; }
    .competitor { background: white; margin: 20px 0; padding: 20px; border-radius: 8px; box-shadow: 0 2px 8px rgba(0,0,0,0.1); }
    .competitor h2 { color: #059669; margin-top: 0; }
    .section { margin: 15px 0; }
    .section h3 { color: #0d9488; margin-bottom: 5px; }
    .grid { display: grid; grid-template-columns: 1fr 1fr; gap: 20px; }
    .badge { background: #d1fae5; color: #065f46; padding: 2px 8px; border-radius: 12px; font-size: 12px; }
    .kill-points { background: #fef3c7; padding: 15px; border-radius: 5px; border-left: 4px solid #f59e0b; }
    .pricing { background: #ecfdf5; padding: 15px; border-radius: 5px; border-left: 4px solid #10b981; }
  </style>
</head>
<body>
  <div class="header">
    <h1>{{.Product}} Sales Team Battle Cards</h1>
    <p>Competitive Intelligence Package &bull; Generated {{.Date}}</p>
  </div>
{{range .Cards}}
  <div class="competitor">
    <h2>{{.Name}} <span class="badge">{{.Category}}</span></h2>
    <div class="grid">
      <div>
        <div class="section">
          <h3>Company Info</h3>
          <p><strong>Location:</strong> {{.Location}}</p>
          <p><strong>Employees:</strong> {{.Employees}}</p>
          <p><strong>Funding:</strong> {{.Funding}}</p>
          <p><strong>Revenue:</strong> {{.Revenue}}</p>
        </div>
        <div class="pricing">
          <h3>Pricing &amp; Market</h3>
          <p>{{.Pricing}}</p>
          <p><strong>Similarity:</strong> {{.Similarity}}/10</p>
          <p><strong>Implementation:</strong> {{.ImplementationTime}}</p>
        </div>
      </div>
      <div>
        <div class="kill-points">
          <h3>Kill Points</h3>
          <ul>
            {{range .KillPoints}}<li>{{.}}</li>{{else}}<li>No competitive points documented</li>{{end}}
          </ul>
        </div>
        <div class="section">
          <h3>Unique Features</h3>
          <ul>
            {{range .UniqueFeatures}}<li>{{.}}</li>{{else}}<li>No unique features documented</li>{{end}}
          </ul>
        </div>
      </div>
    </div>
    <div class="section">
      <h3>Description</h3>
      <p>{{.Description}}</p>
    </div>
    <div class="grid">
      <div class="section">
        <h3>Strengths</h3>
        <ul>
          {{range .Strengths}}<li>{{.}}</li>{{else}}<li>No strengths documented</li>{{end}}
        </ul>
      </div>
      <div class="section">
        <h3>Weaknesses</h3>
        <ul>
          {{range .Weaknesses}}<li>{{.}}</li>{{else}}<li>No weaknesses documented</li>{{end}}
        </ul>
      </div>
    </div>
  </div>
{{end}}
  <div style="text-align: center; margin-top: 40px; color: #666;">
    <p>Generated by {{.Product}} Competitive Intelligence Platform</p>
  </div>
</body>
</html>
`

const productHTML = `<!DOCTYPE html>
<html>
<head>
  <title>{{.Product}} Product Team Analysis</title>
  <style>
    body { font-family: Arial, sans-serif; margin: 0; padding: 20px; background: #f5f5f5; }
    .header { background: linear-gradient(135deg, #7c3aed, #2563eb); color: white; padding: 30px; text-align: center; margin-bottom: 30px; }
    .competitor { background: white; margin: 20px 0; padding: 20px; border-radius: 8px; box-shadow: 0 2px 8px rgba(0,0,0,0.1); }
    .competitor h2 { color: #7c3aed; margin-top: 0; }
    .section { margin: 15px 0; }
    .section h3 { color: #2563eb; margin-bottom: 5px; }
    .capabilities { background: #f0f9ff; padding: 15px; border-radius: 5px; border-left: 4px solid #0ea5e9; }
    .features { background: #faf5ff; padding: 15px; border-radius: 5px; border-left: 4px solid #8b5cf6; }
    .grid { display: grid; grid-template-columns: 1fr 1fr; gap: 20px; }
    .badge { background: #e0e7ff; color: #3730a3; padding: 2px 8px; border-radius: 12px; font-size: 12px; }
    .capability-grid { display: grid; grid-template-columns: repeat(3, 1fr); gap: 10px; font-size: 12px; }
    .cap-item { padding: 5px 10px; border-radius: 5px; text-align: center; }
    .cap-yes { background: #dcfce7; color: #166534; }
    .cap-no { background: #fecaca; color: #991b1b; }
  </style>
</head>
<body>
  <div class="header">
    <h1>{{.Product}} Product Team Analysis</h1>
    <p>Technical Capability Matrix &bull; Generated {{.Date}}</p>
  </div>
{{range .Cards}}
  <div class="competitor">
    <h2>{{.Name}} <span class="badge">{{.Category}}</span></h2>
    <div class="grid">
      <div>
        <div class="section">
          <h3>Company Overview</h3>
          <p><strong>Location:</strong> {{.Location}}</p>
          <p><strong>Team Size:</strong> {{.Employees}}</p>
          <p><strong>Funding:</strong> {{.Funding}}</p>
          <p><strong>Implementation:</strong> {{.ImplementationTime}}</p>
        </div>
        <div class="features">
          <h3>Unique Features</h3>
          <ul>
            {{range .UniqueFeatures}}<li>{{.}}</li>{{else}}<li>No unique features documented</li>{{end}}
          </ul>
        </div>
      </div>
      <div>
        <div class="capabilities">
          <h3>Technical Capabilities</h3>
          <div class="capability-grid">
            {{range .Capabilities}}<div class="cap-item {{if .Covered}}cap-yes{{else}}cap-no{{end}}">{{.Label}}</div>{{else}}<div>No capability data available</div>{{end}}
          </div>
        </div>
      </div>
    </div>
    <div class="section">
      <h3>Technical Description</h3>
      <p>{{.Description}}</p>
    </div>
    <div class="grid">
      <div class="section">
        <h3>Technical Strengths</h3>
        <ul>
          {{range .Strengths}}<li>{{.}}</li>{{else}}<li>No strengths documented</li>{{end}}
        </ul>
      </div>
      <div class="section">
        <h3>Technical Limitations</h3>
        <ul>
          {{range .Weaknesses}}<li>{{.}}</li>{{else}}<li>No weaknesses documented</li>{{end}}
        </ul>
      </div>
    </div>
  </div>
{{end}}
  <div style="text-align: center; margin-top: 40px; color: #666;">
    <p>Generated by {{.Product}} Competitive Intelligence Platform</p>
  </div>
</body>
</html>
`

const gtmHTML = `<!DOCTYPE html>
<html>
<head>
  <title>{{.Product}} GTM Team Market Analysis</title>
  <style>
    body { font-family: Arial, sans-serif; margin: 0; padding: 20px; background: #f5f5f5; }
    .header { background: linear-gradient(135deg, #dc2626, #ea580c); color: white; padding: 30px; text-align: center; margin-bottom: 30px; }
    .competitor { background: white; margin: 20px 0; padding: 20px; border-radius: 8px; box-shadow: 0 2px 8px rgba(0,0,0,0.1); }
    .competitor h2 { color: #dc2626; margin-top: 0; }
    .section { margin: 15px 0; }
    .section h3 { color: #ea580c; margin-bottom: 5px; }
    .market-info { background: #fef2f2; padding: 15px; border-radius: 5px; border-left: 4px solid #ef4444; }
    .positioning { background: #fff7ed; padding: 15px; border-radius: 5px; border-left: 4px solid #f97316; }
    .grid { display: grid; grid-template-columns: 1fr 1fr; gap: 20px; }
    .badge { background: #fee2e2; color: #991b1b; padding: 2px 8px; border-radius: 12px; font-size: 12px; }
  </style>
</head>
<body>
  <div class="header">
    <h1>{{.Product}} GTM Market Analysis</h1>
    <p>Competitive Positioning &amp; Market Intelligence &bull; Generated {{.Date}}</p>
  </div>
{{range .Cards}}
  <div class="competitor">
    <h2>{{.Name}} <span class="badge">{{.Category}}</span></h2>
    <div class="grid">
      <div>
        <div class="market-info">
          <h3>Market Position</h3>
          <p><strong>Target Market:</strong> {{.TargetMarket}}</p>
          <p><strong>Similarity Score:</strong> {{.Similarity}}/10</p>
          <p><strong>Location:</strong> {{.Location}}</p>
          <p><strong>Implementation Time:</strong> {{.ImplementationTime}}</p>
        </div>
        <div class="positioning">
          <h3>Pricing Strategy</h3>
          <p>{{.Pricing}}</p>
        </div>
      </div>
      <div>
        <div class="section">
          <h3>Unique Value Props</h3>
          <ul>
            {{range .UniqueFeatures}}<li>{{.}}</li>{{else}}<li>No unique features documented</li>{{end}}
          </ul>
        </div>
        <div class="section">
          <h3>Competitive Advantages</h3>
          <ul>
            {{range .KillPoints}}<li>{{.}}</li>{{else}}<li>No competitive points documented</li>{{end}}
          </ul>
        </div>
      </div>
    </div>
    <div class="section">
      <h3>Market Description</h3>
      <p>{{.Description}}</p>
    </div>
    <div class="section">
      <h3>Market Strengths</h3>
      <ul>
        {{range .Strengths}}<li>{{.}}</li>{{else}}<li>No strengths documented</li>{{end}}
      </ul>
    </div>
  </div>
{{end}}
  <div style="text-align: center; margin-top: 40px; color: #666;">
    <p>Generated by {{.Product}} Competitive Intelligence Platform</p>
  </div>
</body>
</html>
`

const fullHTML = `<!DOCTYPE html>
<html>
<head>
  <title>{{.Product}} Complete Competitive Analysis</title>
  <style>
    body { font-family: Arial, sans-serif; margin: 0; padding: 20px; background: #f5f5f5; }
    .header { background: linear-gradient(135deg, #1e3a8a, #7c3aed, #dc2626); color: white; padding: 30px; text-align: center; margin-bottom: 30px; }
    .competitor { background: white; margin: 20px 0; padding: 20px; border-radius: 8px; box-shadow: 0 2px 8px rgba(0,0,0,0.1); }
    .competitor h2 { color: #1e3a8a; margin-top: 0; }
    .section { margin: 15px 0; }
    .section h3 { color: #7c3aed; margin-bottom: 5px; }
    .grid { display: grid; grid-template-columns: 1fr 1fr; gap: 20px; }
    .badge { background: #dbeafe; color: #1e40af; padding: 2px 8px; border-radius: 12px; font-size: 12px; }
  </style>
</head>
<body>
  <div class="header">
    <h1>{{.Product}} Complete Competitive Analysis</h1>
    <p>Full Database Export &bull; Generated {{.Date}}</p>
  </div>
{{range .Cards}}
  <div class="competitor">
    <h2>{{.Name}} <span class="badge">{{.Category}}</span></h2>
    <div class="section">
      <h3>Description</h3>
      <p>{{.Description}}</p>
    </div>
    <div class="grid">
      <div>
        <p><strong>Location:</strong> {{.Location}}</p>
        <p><strong>Employees:</strong> {{.Employees}}</p>
        <p><strong>Funding:</strong> {{.Funding}}</p>
        <p><strong>Revenue:</strong> {{.Revenue}}</p>
      </div>
      <div>
        <p><strong>Similarity:</strong> {{.Similarity}}/10</p>
        <p><strong>Implementation:</strong> {{.ImplementationTime}}</p>
        <p><strong>Target Market:</strong> {{.TargetMarket}}</p>
      </div>
    </div>
  </div>
{{end}}
  <div style="text-align: center; margin-top: 40px; color: #666;">
    <p>Generated by {{.Product}} Competitive Intelligence Platform</p>
  </div>
</body>
</html>
`
