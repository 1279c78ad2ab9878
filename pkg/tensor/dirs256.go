package tensor

// sphere256 is the fixed directional sampling table used for mean-kurtosis
// estimation. It is a deterministic spherical Fibonacci lattice of 256 unit
// vectors, embedded as a literal so every build samples the exact same set:
// MK is a finite average over these directions, so the table itself is part
// of the numerical contract. The table is package-private and read-only;
// callers get copies through Sphere256.
var sphere256 = [256][3]float64{
	{0.0883019887145103, 0.0000000000000000, 0.9960937500000000},
	{-0.1125548871112721, 0.1031094965840019, 0.9882812500000000},
	{0.0171944487740848, -0.1959218752584634, 0.9804687500000000},
	{0.1413096069464486, 0.1843133590399180, 0.9726562500000000},
	{-0.2588064927570429, -0.0457792244663034, 0.9648437500000000},
	{0.2446762137501552, -0.1556429791167139, 0.9570312500000000},
	{-0.0816758896218275, 0.3038302382958625, 0.9492187500000000},
	{-0.1554523121061120, -0.2993139674686122, 0.9414062500000000},
	{0.3365900422965614, 0.1229221436021048, 0.9335937500000000},
	{-0.3494577307704697, 0.1442510712375872, 0.9257812500000000},
	{0.1681196634522981, -0.3592619556592703, 0.9179687500000000},
	{0.1239828699691275, 0.3952769263948453, 0.9101562500000000},
	{-0.3729208429190898, -0.2161152510871296, 0.9023437500000000},
	{0.4365793614055696, -0.0959807479036424, 0.8945312500000000},
	{-0.2658876648433142, 0.3781978425144794, 0.8867187500000000},
	{-0.0612988990524588, -0.4730393732934859, 0.8789062500000000},
	{0.3755319424466244, 0.3164987186596537, 0.8710937500000000},
	{-0.5042921686834670, 0.0208540644231070, 0.8632812500000000},
	{0.3670704571724271, -0.3652841322103423, 0.8554687500000000},
	{-0.0245066792040529, 0.5299795321616931, 0.8476562500000000},
	{-0.3477950042011958, -0.4167746521066603, 0.8398437500000000},
	{0.5497747080540395, 0.0739714093926374, 0.8320312500000001},
	{-0.4648287110690102, 0.3234157100611537, 0.8242187500000000},
	{0.1267456611000903, -0.5633971710554097, 0.8164062500000000},
	{0.2925249976406429, 0.5104951255558463, 0.8085937500000000},
	{-0.5706219296531599, -0.1820439591069740, 0.8007812500000000},
	{0.5530829224021440, -0.2555383385532228, 0.7929687500000000},
	{-0.2390867470825306, 0.5712855594669198, 0.7851562500000000},
	{-0.2129122278341097, -0.5919502323461439, 0.7773437500000000},
	{0.5652900803147120, 0.2971006233100565, 0.7695312500000000},
	{-0.6265074300849347, 0.1651453479417697, 0.7617187500000000},
	{0.3553206663843136, -0.5526052752653966, 0.7539062500000000},
	{0.1127775846772901, 0.6562204908453364, 0.7460937500000000},
	{-0.5332697906014636, -0.4129940996313491, 0.7382812500000000},
	{0.6806143214192637, -0.0563875052864796, 0.7304687500000000},
	{-0.4693848043075016, 0.5073912196926017, 0.7226562500000000},
	{0.0034113022158775, -0.6992758941241500, 0.7148437500000001},
	{0.4751453005819581, 0.5237783451597805, 0.7070312500000001},
	{-0.7118570584908137, -0.0659747521802375, 0.6992187500000000},
	{0.5754872659602333, -0.4367743172149129, 0.6914062500000000},
	{-0.1306334441876760, 0.7180769375356675, 0.6835937500000001},
	{-0.3925847727271094, -0.6238564725730120, 0.6757812500000000},
	{0.7177238388098154, 0.1966983483091296, 0.6679687500000000},
	{-0.6682685609218807, 0.3429443920948936, 0.6601562500000000},
	{0.2634668641803375, -0.7106566282776213, 0.6523437500000001},
	{0.2882785063401477, 0.7081489748320836, 0.6445312500000000},
	{-0.6968055294024829, -0.3302291440690283, 0.6367187500000000},
	{0.7429708987815439, -0.2290658688558431, 0.6289062500000000},
	{-0.3962745827721570, 0.6761723217935577, 0.6210937500000000},
	{-0.1658339547914068, -0.7722598059181115, 0.6132812500000001},
	{0.6488299241301323, 0.4608983861185938, 0.6054687500000001},
	{-0.7955975940095814, 0.0991537959036511, 0.5976562500000000},
	{0.5234081365376581, -0.6149213552903443, 0.5898437500000000},
	{0.0296344052716505, 0.8126262523741361, 0.5820312500000001},
	{-0.5746580759554936, -0.5831302795152793, 0.5742187500000000},
	{0.8230510119759673, 0.0420831515724974, 0.5664062500000000},
	{-0.6394164593919706, 0.5283177206185442, 0.5585937500000000},
	{0.1153319804700263, -0.8266429392000509, 0.5507812500000001},
	{0.4762412370015462, 0.6916496372461094, 0.5429687500000001},
	{-0.8232409416177066, -0.1894258169583264, 0.5351562500000000},
	{0.7392499278001481, -0.4188294564418952, 0.5273437500000000},
	{-0.2636656571468894, 0.8127531614916896, 0.5195312500000000},
	{-0.3565391248717308, -0.7816800965447041, 0.5117187500000000},
	{0.7951577399481509, 0.3373464981461738, 0.5039062500000000},
	{-0.8184506626948160, 0.2898784295965363, 0.4960937500000001},
	{0.4097641244710510, -0.7705029417172335, 0.4882812500000000},
	{0.2194020621777245, 0.8491245582278253, 0.4804687500000000},
	{-0.7389066371378309, -0.4802218767711438, 0.4726562500000001},
	{0.8733212981311901, -0.1457058623267797, 0.4648437500000000},
	{-0.5480373397021739, 0.7005551447356601, 0.4570312500000001},
	{-0.0694210918123172, -0.8907206221144897, 0.4492187500000001},
	{0.6557014441039063, 0.6125488867518980, 0.4414062500000000},
	{-0.9010655734025335, -0.0087916090507403, 0.4335937500000000},
	{0.6731220213718275, -0.6046627750182265, 0.4257812500000000},
	{-0.0882485267350080, 0.9041649858032206, 0.4179687500000000},
	{-0.5478176446733299, -0.7291554558326384, 0.4101562500000000},
	{0.8998953560034287, 0.1682493835929270, 0.4023437500000000},
	{-0.7800868718036578, 0.4856022706011795, 0.3945312500000000},
	{0.2480839907435058, -0.8882020839511769, 0.3867187500000000},
	{0.4185064921871777, 0.8253983097318054, 0.3789062500000000},
	{-0.8691000701900335, -0.3270389834662167, 0.3710937500000000},
	{0.8646211376390123, -0.3470691887019903, 0.3632812500000000},
	{-0.4044045770760560, 0.8426736650764481, 0.3554687500000001},
	{-0.2718732463785600, -0.8973405539367539, 0.3476562500000000},
	{0.8090759708839849, 0.4794812810987252, 0.3398437500000000},
	{-0.9231995832371742, 0.1935401212517586, 0.3320312500000000},
	{0.5515865099914387, -0.7685275038304759, 0.3242187500000000},
	{0.1127240482102733, 0.9419025288829124, 0.3164062500000001},
	{-0.7213142290049798, -0.6200610296542504, 0.3085937500000000},
	{0.9532178509792518, -0.0301059499590087, 0.3007812500000000},
	{-0.6842751805387592, 0.6677849869696728, 0.2929687500000000},
	{0.0536128976717530, -0.9569804440474088, 0.2851562500000001},
	{0.6083483364193996, 0.7436348202657582, 0.2773437500000000},
	{-0.9530932939776525, -0.1377173854248822, 0.2695312500000000},
	{0.7975869312924810, -0.5434688426486662, 0.2617187500000000},
	{-0.2214852150165504, 0.9415284996961112, 0.2539062500000000},
	{-0.4736628466569200, -0.8456248422958024, 0.2460937500000000},
	{0.9223276508171834, 0.3041936068304088, 0.2382812500000000},
	{-0.8872930155311300, 0.3994937544732225, 0.2304687500000000},
	{0.3851260089645512, -0.8956015584817693, 0.2226562500000000},
	{0.3215668906604649, 0.9221913564531486, 0.2148437500000000},
	{-0.8615293425267986, -0.4635787457258795, 0.2070312500000000},
	{0.9499790063076762, -0.2405239639269185, 0.1992187500000000},
	{-0.5388675442721096, 0.8203568840395524, 0.1914062500000000},
	{-0.1570371962975036, -0.9703775831808755, 0.1835937500000000},
	{0.7723946581687969, 0.6103338792667051, 0.1757812500000000},
	{-0.9831738420807569, 0.0718031703450510, 0.1679687500000000},
	{0.6773510771280525, -0.7180149677405092, 0.1601562500000000},
	{-0.0144635484715444, 0.9882217299784238, 0.1523437500000000},
	{-0.6576486037085391, -0.7393301237022920, 0.1445312500000000},
	{0.9854438173044525, 0.1010369552929339, 0.1367187500000000},
	{-0.7957251219490917, 0.5917809637104261, 0.1289062500000000},
	{0.1871862546182716, -0.9748320931283095, 0.1210937500000000},
	{0.5209476649487893, 0.8460383494752713, 0.1132812500000000},
	{-0.9564481170936654, -0.2721825528600605, 0.1054687500000000},
	{0.8898248694525135, -0.4457296922348286, 0.0976562500000000},
	{-0.3553055328520343, 0.9304225270868443, 0.0898437500000000},
	{-0.3667481262711615, -0.9266966525784097, 0.0820312500000000},
	{0.8969539075257582, 0.4358500486666385, 0.0742187500000000},
	{-0.9563261722471822, 0.2846585010780293, 0.0664062500000000},
	{0.5131325798586447, -0.8563070290197023, 0.0585937500000000},
	{0.2001448428474163, 0.9784494399456829, 0.0507812500000000},
	{-0.8088104759117389, -0.5864974855690891, 0.0429687500000000},
	{0.9928684530394413, -0.1139134454092415, 0.0351562500000000},
	{-0.6553230007800297, 0.7548536838252793, 0.0273437500000000},
	{-0.0266864398930560, -0.9994530325129201, 0.0195312500000000},
	{0.6948834147419894, 0.7190269193951989, 0.0117187500000000},
	{-0.9981420338317079, -0.0608047819602971, 0.0039062500000000},
	{0.7770719117081690, -0.6293997022919134, -0.0039062500000000},
	{-0.1478262300522721, 0.9889439198493362, -0.0117187500000000},
	{-0.5589513047915823, -0.8289704271837598, -0.0195312500000000},
	{0.9719366905364952, 0.2336480021847021, -0.0273437500000000},
	{-0.8742891372890786, 0.4841307080781553, -0.0351562500000000},
	{0.3175509325464850, -0.9472671702124461, -0.0429687500000000},
	{0.4055687243165397, 0.9126528773332675, -0.0507812500000000},
	{-0.9151496588539679, -0.3988331410005989, -0.0585937500000000},
	{0.9437480508715249, -0.3239287366646175, -0.0664062500000000},
	{-0.4768164226503971, 0.8758639598929250, -0.0742187500000000},
	{-0.2399006429356136, -0.9673254651576774, -0.0820312500000000},
	{0.8297528026366541, 0.5508524186227699, -0.0898437500000000},
	{-0.9832025713459301, 0.1541945541667693, -0.0976562500000000},
	{0.6203285110026820, -0.7772186830041035, -0.1054687500000000},
	{0.0675343062647190, 0.9912650885993013, -0.1132812500000000},
	{-0.7187201516143149, -0.6846733873712587, -0.1210937500000000},
	{0.9914679969103257, 0.0193491553708174, -0.1289062500000000},
	{-0.7433622234137796, 0.6547675833452352, -0.1367187500000000},
	{0.1057244571560998, -0.9838358892277135, -0.1445312500000000},
	{0.5859184672509871, 0.7959214355513938, -0.1523437500000000},
	{-0.9684626793588627, -0.1908664828485880, -0.1601562500000000},
	{0.8419329594740568, -0.5127722601454702, -0.1679687500000000},
	{-0.2740630015026553, 0.9455106680285491, -0.1757812500000000},
	{-0.4359648511850729, -0.8810380147826283, -0.1835937500000000},
	{0.9152089753660692, 0.3546211765677952, -0.1914062500000000},
	{-0.9129403206425255, 0.3561626883792860, -0.1992187500000000},
	{0.4318738958970063, -0.8778513539125968, -0.2070312500000000},
	{0.2740566210910012, 0.9374087323692483, -0.2148437500000000},
	{-0.8337934019349990, -0.5051858640397600, -0.2226562500000000},
	{0.9542792741619774, -0.1903555152296012, -0.2304687500000000},
	{-0.5739594003373119, 0.7834492023500126, -0.2382812500000000},
	{-0.1057796999650183, -0.9634565487276778, -0.2460937500000000},
	{0.7272874178532677, 0.6376398889994759, -0.2539062500000000},
	{-0.9649145102449781, 0.0210543063797334, -0.2617187500000001},
	{0.6957208304980256, -0.6658268778628385, -0.2695312500000000},
	{-0.0630974404870906, 0.9586965929531176, -0.2773437500000000},
	{-0.5996316975808772, -0.7477484472349061, -0.2851562500000001},
	{0.9449151935638179, 0.1459609142739590, -0.2929687500000000},
	{-0.7933258005015684, 0.5293059738062506, -0.3007812500000000},
	{0.2268367027728091, -0.9237505116296812, -0.3085937500000001},
	{0.4554881060559506, 0.8321163802032144, -0.3164062500000000},
	{-0.8954487579078676, -0.3050470850699851, -0.3242187500000000},
	{0.8638471336395424, -0.3788447950364160, -0.3320312500000000},
	{-0.3799423103993722, 0.8603197465793312, -0.3398437500000001},
	{-0.3000647735166573, -0.8883109047683332, -0.3476562500000000},
	{0.8187338928680565, 0.4509066205352890, -0.3554687500000000},
	{-0.9053682607870189, 0.2198523271605874, -0.3632812500000000},
	{0.5173639598702121, -0.7711186431012748, -0.3710937500000000},
	{0.1389206648576034, 0.9149486884992289, -0.3789062500000000},
	{-0.7179543695092203, -0.5787833201648572, -0.3867187500000001},
	{0.9170511487424150, -0.0579851995224178, -0.3945312500000000},
	{-0.6346836702982105, 0.6597697670344784, -0.4023437500000000},
	{0.0222431987941691, -0.9117439830858993, -0.4101562500000000},
	{0.5971367940605692, 0.6846384251577639, -0.4179687500000000},
	{-0.8991641730155705, -0.1010649153448553, -0.4257812500000001},
	{0.7282794120644002, -0.5306652032346469, -0.4335937500000000},
	{-0.1777982068194639, 0.8795159578499533, -0.4414062500000000},
	{-0.4609967124108267, -0.7653002977882911, -0.4492187500000000},
	{0.8530688236310929, 0.2517856601796471, -0.4570312500000000},
	{-0.7954594442452517, 0.3887988691431251, -0.4648437500000001},
	{0.3224004346430968, -0.8201548811522612, -0.4726562500000000},
	{0.3147586650788597, 0.8185821663285927, -0.4804687500000000},
	{-0.7811656570742646, -0.3890522292779854, -0.4882812500000000},
	{0.8345623709896086, -0.2395759590174697, -0.4960937500000000},
	{-0.4511929212404956, 0.7365483276971074, -0.5039062500000000},
	{-0.1639567692837897, -0.8433635625899780, -0.5117187500000000},
	{0.6868014303511515, 0.5083218228062316, -0.5195312500000000},
	{-0.8450192056718295, 0.0886064974010816, -0.5273437500000000},
	{0.5599905089913479, -0.6324700925146963, -0.5351562500000000},
	{0.0142231458273821, 0.8396324425879520, -0.5429687500000000},
	{-0.5741408236191072, -0.6058071717158940, -0.5507812500000000},
	{0.8273751698725978, 0.0585094072712028, -0.5585937500000000},
	{-0.6454404611049326, 0.5124359190470450, -0.5664062500000000},
	{0.1289280135886492, -0.8084864837834475, -0.5742187500000000},
	{0.4480075300468339, 0.6786227796388601, -0.5820312500000001},
	{-0.7832705120906587, -0.1963966788802061, -0.5898437500000000},
	{0.7051530004332573, -0.3815314571774026, -0.5976562500000000},
	{-0.2603127455439661, 0.7520936559237819, -0.6054687500000001},
	{-0.3137007284791503, -0.7248985869417101, -0.6132812500000001},
	{0.7153812723272095, 0.3201127753065168, -0.6210937500000000},
	{-0.7377970978314237, 0.2452190268769251, -0.6289062500000000},
	{0.3752780761982800, -0.6736138351632599, -0.6367187500000000},
	{0.1767940344353593, 0.7438570676961446, -0.6445312500000000},
	{-0.6273226192241691, -0.4253398209028467, -0.6523437500000000},
	{0.7431582616828888, -0.1091307641245335, -0.6601562500000001},
	{-0.4698837068320922, 0.5770849600164347, -0.6679687500000000},
	{-0.0429249529045715, -0.7358513100936750, -0.6757812500000000},
	{0.5235191499003318, 0.5085541118195501, -0.6835937500000001},
	{-0.7221567377115767, -0.0211434065067691, -0.6914062500000000},
	{0.5410577030016186, -0.4672790404790801, -0.6992187500000001},
	{-0.0824163134100580, 0.7023634122071939, -0.7070312500000001},
	{-0.4090484319240010, -0.5671664600683414, -0.7148437500000000},
	{0.6768264468529928, 0.1402636987117140, -0.7226562500000000},
	{-0.5867200773071808, 0.3495353432173824, -0.7304687500000000},
	{0.1940889599930133, -0.6459646054601351, -0.7382812500000000},
	{0.2894662745576623, 0.5996277112547798, -0.7460937500000000},
	{-0.6102572728357634, -0.2433339827520894, -0.7539062500000000},
	{0.6058690415347574, -0.2295805967589420, -0.7617187500000000},
	{-0.2874835183112285, 0.5702410735582234, -0.7695312500000000},
	{-0.1706252362609434, -0.6054946102871889, -0.7773437500000000},
	{0.5265062478117747, 0.3260687567080041, -0.7851562500000000},
	{-0.5986253982176052, 0.1133498748664997, -0.7929687500000000},
	{0.3586698805507451, -0.4796929293143185, -0.8007812500000001},
	{0.0585029618444642, 0.5854515786265869, -0.8085937500000000},
	{-0.4304875237387514, -0.3849172987359953, -0.8164062500000000},
	{0.5662303572000768, -0.0068289628429963, -0.8242187500000000},
	{-0.4044911101519360, 0.3796194684568902, -0.8320312500000000},
	{0.0409325170554951, -0.5412827400106520, -0.8398437500000000},
	{0.3278587881455980, 0.4171180850450354, -0.8476562500000000},
	{-0.5109889448780092, -0.0840447261040004, -0.8554687500000001},
	{0.4225649702375845, -0.2760150889472292, -0.8632812500000000},
	{-0.1217671801495984, 0.4757819170054204, -0.8710937500000000},
	{-0.2249390451280922, -0.4206259973988765, -0.8789062500000000},
	{0.4361378799564144, 0.1533414753599357, -0.8867187500000000},
	{-0.4111005793247006, 0.1755282212418649, -0.8945312500000000},
	{0.1779637155625612, -0.3925616802224910, -0.9023437500000000},
	{0.1287407040541594, 0.3937530085035247, -0.9101562500000000},
	{-0.3455618704151959, -0.1947315273359424, -0.9179687500000000},
	{0.3682358696302062, -0.0856237202305724, -0.9257812500000000},
	{-0.2025378894599258, 0.2956029656381282, -0.9335937500000000},
	{-0.0473739075330600, -0.3339311086825943, -0.9414062500000000},
	{0.2429990815950516, 0.1998379618400842, -0.9492187500000000},
	{-0.2895716116534660, 0.0154747616411947, -0.9570312500000000},
	{0.1840482216405638, -0.1876240661452667, -0.9648437500000000},
	{-0.0079293314148562, 0.2321140776412557, -0.9726562500000000},
	{-0.1278232998271377, -0.1494731892171274, -0.9804687500000000},
	{0.1515152009174172, 0.0185287557432280, -0.9882812500000000},
	{-0.0718699660600888, 0.0513025261508552, -0.9960937500000000},
}
