// Copyright 2026 The Paymap Authors
// SPDX-License-Identifier: MIT

package output

// mapTemplate is the single-page interactive map. The layer switcher is a
// one-variable state machine: clicking a toggle sets currentLayer and
// re-renders markers and legend from the embedded data. No network calls
// happen at view time beyond the Leaflet assets and tile imagery.
const mapTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="utf-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>{{.Title}}</title>

    <!-- Leaflet CSS -->
    <link rel="stylesheet" href="https://unpkg.com/leaflet@1.9.4/dist/leaflet.css" />

    <style>
        body {
            margin: 0;
            padding: 0;
            font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, sans-serif;
        }
        #map {
            width: 100%;
            height: 600px;
        }
        .legend {
            background: white;
            padding: 10px;
            border-radius: 5px;
            box-shadow: 0 1px 5px rgba(0,0,0,0.4);
            line-height: 20px;
            color: #555;
            max-height: 500px;
            overflow-y: auto;
        }
        .legend h4 {
            margin: 0 0 8px;
            font-size: 13px;
            font-weight: 600;
        }
        .legend-item {
            margin-bottom: 4px;
            display: flex;
            align-items: center;
            font-size: 12px;
        }
        .legend-color {
            width: 16px;
            height: 16px;
            border-radius: 50%;
            display: inline-block;
            margin-right: 6px;
            border: 1px solid #999;
            flex-shrink: 0;
        }
        .info {
            padding: 6px 8px;
            font: 14px/16px Arial, Helvetica, sans-serif;
            background: white;
            background: rgba(255,255,255,0.9);
            box-shadow: 0 0 15px rgba(0,0,0,0.2);
            border-radius: 5px;
        }
        .info h4 {
            margin: 0 0 5px;
            color: #777;
            font-size: 14px;
        }
        .layer-control {
            background: white;
            padding: 10px;
            border-radius: 5px;
            box-shadow: 0 1px 5px rgba(0,0,0,0.4);
            max-height: 500px;
            overflow-y: auto;
        }
        .layer-control h4 {
            margin: 0 0 8px 0;
            font-size: 13px;
            font-weight: 600;
        }
        .layer-control button {
            display: block;
            width: 100%;
            margin: 4px 0;
            padding: 6px 8px;
            border: 1px solid #ccc;
            background: #f8f9fa;
            cursor: pointer;
            border-radius: 3px;
            font-size: 12px;
            text-align: left;
        }
        .layer-control button.active {
            background: #007bff;
            color: white;
            border-color: #007bff;
            font-weight: 500;
        }
        .layer-control button:hover {
            background: #e9ecef;
        }
        .layer-control button.active:hover {
            background: #0056b3;
        }
    </style>
</head>
<body>
    <div id="map"></div>

    <!-- Leaflet JS -->
    <script src="https://unpkg.com/leaflet@1.9.4/dist/leaflet.js"></script>

    <script>
        // Initialize map
        var map = L.map('map').setView([20, 0], 2);

        // Add tile layer
        L.tileLayer('https://{s}.tile.openstreetmap.org/{z}/{x}/{y}.png', {
            attribution: '&copy; OpenStreetMap contributors',
            maxZoom: 18,
        }).addTo(map);

        // Country coordinates
        var countryCoords = {{json .Coordinates}};

        // Layer data
        var layersData = {{json .Layers}};

        // Layer legends
        var layerLegends = {{json .Legends}};

        // Layer keys in display order; the first is shown on load.
        var layerButtons = {{json .LayerKeys}};

        // Current layer
        var currentLayer = layerButtons[0];
        var currentMarkers = L.layerGroup().addTo(map);

        // Function to update map with current layer
        function updateMap() {
            currentMarkers.clearLayers();

            var markers = layersData[currentLayer];
            markers.forEach(function(marker) {
                var coords = countryCoords[marker.country];
                if (coords) {
                    var circle = L.circleMarker([coords[0], coords[1]], {
                        radius: 6 + (marker.system_count > 1 ? 2 : 0),
                        fillColor: marker.color,
                        color: '#000',
                        weight: 1,
                        opacity: 1,
                        fillOpacity: 0.8
                    });
                    circle.bindPopup(marker.popup);
                    currentMarkers.addLayer(circle);
                }
            });

            updateLegend();
        }

        // Add layer control
        var layerControl = L.control({position: 'topright'});

        layerControl.onAdd = function (map) {
            var div = L.DomUtil.create('div', 'layer-control');
            div.innerHTML = '<h4>Select Layer</h4>' +
{{- range .Buttons}}
                '<button id="btn-{{.Key}}"{{if .Active}} class="active"{{end}}>{{.Label}}</button>' +
{{- end}}
                '';
            return div;
        };

        layerControl.addTo(map);

        // Add legend
        var legend = L.control({position: 'bottomright'});
        var legendDiv;

        legend.onAdd = function (map) {
            legendDiv = L.DomUtil.create('div', 'legend');
            updateLegend();
            return legendDiv;
        };

        function updateLegend() {
            if (!legendDiv) return;

            var legendInfo = layerLegends[currentLayer];
            var title = legendInfo[0];
            var items = legendInfo[1];

            legendDiv.innerHTML = '<h4>' + title + '</h4>';
            items.forEach(function(item) {
                legendDiv.innerHTML += '<div class="legend-item">' +
                    '<span class="legend-color" style="background:' + item[0] + '"></span>' +
                    '<span>' + item[1] + '</span></div>';
            });
        }

        legend.addTo(map);

        // Layer switching handlers
        setTimeout(function() {
            layerButtons.forEach(function(layerType) {
                document.getElementById('btn-' + layerType).addEventListener('click', function() {
                    if (currentLayer !== layerType) {
                        // Remove active class from all buttons
                        layerButtons.forEach(function(lt) {
                            document.getElementById('btn-' + lt).classList.remove('active');
                        });

                        // Add active class to clicked button
                        this.classList.add('active');

                        // Update current layer and refresh map
                        currentLayer = layerType;
                        updateMap();
                    }
                });
            });
        }, 100);

        // Add info box
        var info = L.control({position: 'topleft'});

        info.onAdd = function (map) {
            this._div = L.DomUtil.create('div', 'info');
            this._div.innerHTML = '<h4>{{.Title}}</h4>' +
                '<p>{{.Caption}}</p>';
            return this._div;
        };

        info.addTo(map);

        // Initial map render
        updateMap();
    </script>
</body>
</html>`
