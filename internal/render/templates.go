package render

// timelinePageTemplate is the self-contained interactive page. The
// chart payload is injected as JSON and the inline script draws the
// same layout the SVG renderer produces, plus hover tooltips.
const timelinePageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body{margin:0;background:#fff;font-family:Arial,sans-serif;display:flex;flex-direction:column;align-items:center}
h1{font-size:16px;color:#2C3E50;font-weight:normal;margin:24px 0 8px}
#wrap{position:relative}
#timeline{display:block}
#tip{position:fixed;background:#1c2128;color:#fff;padding:8px 10px;border-radius:4px;font-size:11px;line-height:1.6;pointer-events:none;display:none;z-index:10;box-shadow:0 4px 12px rgba(0,0,0,.4)}
</style>
</head>
<body>
<h1>{{.Title}}</h1>
<div id="wrap">
  <canvas id="timeline"></canvas>
  <div id="tip"></div>
</div>
<script>
(function(){
var DATA = {{.JSONData}};

var MARGIN = {left:50, right:50, top:20, bottom:80};
var GRID = '#ECF0F1', TICK = '#34495E';

var canvas = document.getElementById('timeline');
var tip = document.getElementById('tip');
var dpr = window.devicePixelRatio || 1;
canvas.width = DATA.width * dpr;
canvas.height = DATA.height * dpr;
canvas.style.width = DATA.width + 'px';
canvas.style.height = DATA.height + 'px';
var ctx = canvas.getContext('2d');
ctx.scale(dpr, dpr);

var span = DATA.width - MARGIN.left - MARGIN.right;
var rows = DATA.entries.length;
var rowH = (DATA.height - MARGIN.top - MARGIN.bottom) / rows;

function px(pos){ return MARGIN.left + (pos - DATA.xMin) / (DATA.xMax - DATA.xMin) * span; }
// Rows draw in reverse table order: the last-sorted entry sits on top.
function py(row){ return MARGIN.top + (rows - 1 - row + 0.5) * rowH; }

function draw(){
  ctx.clearRect(0, 0, DATA.width, DATA.height);
  ctx.fillStyle = '#fff';
  ctx.fillRect(0, 0, DATA.width, DATA.height);

  DATA.ticks.forEach(function(t){
    var x = px(t.position);
    ctx.strokeStyle = GRID;
    ctx.lineWidth = 1;
    ctx.beginPath();
    ctx.moveTo(x, MARGIN.top);
    ctx.lineTo(x, DATA.height - MARGIN.bottom);
    ctx.stroke();

    ctx.save();
    ctx.translate(x, DATA.height - MARGIN.bottom + 15);
    ctx.rotate(Math.PI / 4);
    ctx.fillStyle = TICK;
    ctx.font = '10px Arial';
    ctx.textAlign = 'left';
    ctx.fillText(t.label, 0, 0);
    ctx.restore();
  });

  DATA.entries.forEach(function(e){
    var x1 = px(e.startPos), x2 = px(e.endPos), y = py(e.row);
    ctx.strokeStyle = e.color;
    ctx.lineWidth = e.width;
    ctx.lineCap = 'round';
    ctx.beginPath();
    ctx.moveTo(x1, y);
    ctx.lineTo(x2, y);
    ctx.stroke();

    ctx.fillStyle = '#fff';
    ctx.font = 'bold 7px Arial';
    ctx.textAlign = 'center';
    ctx.textBaseline = 'middle';
    ctx.fillText(e.name, (x1 + x2) / 2, y);
  });
}

function hitTest(mx, my){
  for (var i = 0; i < DATA.entries.length; i++) {
    var e = DATA.entries[i];
    var y = py(e.row);
    var x1 = px(e.startPos), x2 = px(e.endPos);
    var pad = Math.max(e.width / 2, 4);
    if (my >= y - pad && my <= y + pad && mx >= x1 - pad && mx <= x2 + pad) return e;
  }
  return null;
}

canvas.addEventListener('mousemove', function(ev){
  var rect = canvas.getBoundingClientRect();
  var e = hitTest(ev.clientX - rect.left, ev.clientY - rect.top);
  if (!e) { tip.style.display = 'none'; return; }
  tip.innerHTML = '<b>' + e.name + '</b><br>' +
    'Start: ' + e.startTip + '<br>' +
    'End: ' + e.endTip + '<br>' +
    'Duration: ' + e.duration;
  tip.style.display = 'block';
  tip.style.left = (ev.clientX + 12) + 'px';
  tip.style.top = (ev.clientY + 12) + 'px';
});

canvas.addEventListener('mouseleave', function(){ tip.style.display = 'none'; });

draw();
})();
</script>
</body>
</html>
`
