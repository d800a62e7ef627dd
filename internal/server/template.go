package server

import "html/template"

// formData feeds the upload page template.
type formData struct {
	Messages []string
}

var formTemplate = template.Must(template.New("form").Parse(formPage))

const formPage = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Excel to XHTML Converter - EU Tax Reporting</title>
    <style>
        body { font-family: Arial, sans-serif; max-width: 800px; margin: 0 auto; padding: 20px; background-color: #f5f5f5; }
        .container { background-color: white; padding: 30px; border-radius: 10px; box-shadow: 0 2px 10px rgba(0,0,0,0.1); }
        h1 { color: #2c3e50; text-align: center; margin-bottom: 30px; }
        .info-box { background-color: #e8f4fd; border-left: 4px solid #3498db; padding: 15px; margin-bottom: 25px; }
        .upload-area { border: 2px dashed #3498db; border-radius: 10px; padding: 40px; text-align: center; margin-bottom: 20px; }
        .btn { background-color: #3498db; color: white; padding: 12px 24px; border: none; border-radius: 5px; cursor: pointer; font-size: 16px; }
        .error { background-color: #f8d7da; color: #721c24; padding: 12px; border-radius: 5px; margin-bottom: 20px; }
        .requirements { background-color: #fff3cd; border-left: 4px solid #ffc107; padding: 15px; margin-bottom: 25px; }
    </style>
</head>
<body>
    <div class="container">
        <h1>Excel to XHTML Converter</h1>
        <p style="text-align: center; color: #6c757d;">EU Tax Reporting Compliance Tool (Regulation 2024/2952)</p>

        <div class="info-box">
            <strong>Purpose:</strong> Convert Excel-based income tax reports to XHTML format with Inline XBRL markups for EU country-by-country reporting requirements.
        </div>

        <div class="requirements">
            <h3>Excel File Requirements:</h3>
            <ul>
                <li><strong>Sheet 1:</strong> "General Information" - Company details, financial year, currency</li>
                <li><strong>Sheet 2:</strong> "Country-by-Country Overview" - Tax data by jurisdiction</li>
                <li><strong>Sheet 3:</strong> "Subsidiaries and Activities" - Entity listings and business activities</li>
                <li><strong>Sheet 4:</strong> "Omitted Information" - Disclosure of any omitted data</li>
            </ul>
            <p><strong>Note:</strong> All sections must be present or you will receive an error message.</p>
        </div>

        {{range .Messages}}<div class="error">{{.}}</div>
        {{end}}
        <form method="post" enctype="multipart/form-data">
            <div class="upload-area">
                <h3>Upload Your Excel File</h3>
                <p>Select an Excel file (.xlsx or .xls) containing your tax reporting data</p>
                <input type="file" name="file" accept=".xlsx,.xls" required>
            </div>
            <div style="text-align: center;">
                <button type="submit" class="btn">Convert to XHTML</button>
            </div>
        </form>

        <div style="margin-top: 30px; padding-top: 20px; border-top: 1px solid #ddd; font-size: 14px; color: #6c757d;">
            <p><strong>Compliance Information:</strong></p>
            <ul>
                <li>Output conforms to Commission Implementing Regulation (EU) 2024/2952</li>
                <li>Uses Inline XBRL 1.1 specification</li>
                <li>Applies to financial years starting on or after 1 January 2025</li>
                <li>Required for undertakings with consolidated revenues over EUR 750 million</li>
            </ul>
        </div>
    </div>
</body>
</html>
`
